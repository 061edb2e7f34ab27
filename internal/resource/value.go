package resource

import (
	"encoding/json"
	"time"
)

// Ref points at an attribute of another node. The value is only known to the
// provisioning backend once the referenced resource exists.
type Ref struct {
	Node      string
	Attribute string
}

// Output returns a reference to attribute attr of node name.
func Output(name, attr string) Ref {
	return Ref{Node: name, Attribute: attr}
}

// String renders the reference as "node.attribute".
func (r Ref) String() string {
	return r.Node + "." + r.Attribute
}

// MarshalJSON implements json.Marshaler.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"ref": r.String()})
}

// SecretRef names one field of a secret. The plaintext never enters the plan;
// the backend injects it into the container at deploy time.
type SecretRef struct {
	Secret string
	Field  string
}

// MarshalJSON implements json.Marshaler.
func (s SecretRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]string{
		"valueFrom": {"secret": s.Secret, "field": s.Field},
	})
}

// PosixOwner is the ownership stamp applied by an access point.
type PosixOwner struct {
	UID         int    `json:"uid"`
	GID         int    `json:"gid"`
	Permissions string `json:"permissions"`
}

// MountBinding associates a container path with a task volume.
type MountBinding struct {
	ContainerPath string `json:"containerPath"`
	SourceVolume  string `json:"sourceVolume"`
	ReadOnly      bool   `json:"readOnly"`
}

// EFSVolume is a task definition volume backed by an access point.
type EFSVolume struct {
	Name              string `json:"name"`
	FileSystemID      Ref    `json:"fileSystemId"`
	AccessPointID     Ref    `json:"accessPointId"`
	TransitEncryption bool   `json:"transitEncryption"`
	IAMAuthorization  bool   `json:"iamAuthorization"`
}

// HealthCheck is a container liveness probe.
type HealthCheck struct {
	Command     []string
	Interval    time.Duration
	Timeout     time.Duration
	Retries     int
	StartPeriod time.Duration
}

// MarshalJSON implements json.Marshaler, rendering durations in whole seconds.
func (h HealthCheck) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Command     []string `json:"command"`
		Interval    int      `json:"intervalSeconds"`
		Timeout     int      `json:"timeoutSeconds"`
		Retries     int      `json:"retries"`
		StartPeriod int      `json:"startPeriodSeconds"`
	}{
		Command:     h.Command,
		Interval:    int(h.Interval / time.Second),
		Timeout:     int(h.Timeout / time.Second),
		Retries:     h.Retries,
		StartPeriod: int(h.StartPeriod / time.Second),
	})
}

// PortMapping exposes a container port.
type PortMapping struct {
	ContainerPort int    `json:"containerPort"`
	Protocol      string `json:"protocol"`
}

// PolicyGrant allows an identity role a set of actions on a resource.
type PolicyGrant struct {
	Actions  []string `json:"actions"`
	Resource Ref      `json:"resource"`
}

// TargetGroup is the load balancer target group that fronts a service.
type TargetGroup struct {
	Container       string `json:"container"`
	Port            int    `json:"port"`
	Protocol        string `json:"protocol"`
	HealthCheckPath string `json:"healthCheckPath,omitempty"`
}

// LogDriver routes container output to a log group.
type LogDriver struct {
	Driver       string `json:"driver"`
	LogGroup     Ref    `json:"logGroup"`
	StreamPrefix string `json:"streamPrefix"`
}

// ImageAsset describes a container image built from a local directory.
type ImageAsset struct {
	AssetName  string `json:"assetName"`
	Directory  string `json:"directory"`
	Dockerfile string `json:"file"`
}
