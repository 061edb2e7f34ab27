package resource

// Kind is the category of infrastructure a node describes.
type Kind string

const (
	KindNetwork        Kind = "Network"
	KindLoadBalancer   Kind = "LoadBalancer"
	KindFileSystem     Kind = "FileSystem"
	KindAccessPoint    Kind = "AccessPoint"
	KindSecret         Kind = "Secret"
	KindIdentityRole   Kind = "IdentityRole"
	KindTaskDefinition Kind = "TaskDefinition"
	KindContainer      Kind = "Container"
	KindService        Kind = "Service"
	KindLogGroup       Kind = "LogGroup"
	KindSecurityRule   Kind = "SecurityRule"
	KindEndpoint       Kind = "Endpoint"
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindNetwork, KindLoadBalancer, KindFileSystem, KindAccessPoint,
		KindSecret, KindIdentityRole, KindTaskDefinition, KindContainer,
		KindService, KindLogGroup, KindSecurityRule, KindEndpoint,
	}
}

// IsValid returns true if k is one of the known kinds.
func (k Kind) IsValid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Provenance records whether a node is defined by this plan or points at a
// resource that already exists.
type Provenance string

const (
	// Created nodes are defined by the plan and carry creation parameters.
	Created Provenance = "Created"
	// Imported nodes are pure references to pre-existing resources.
	Imported Provenance = "Imported"
)
