package catalog

import (
	"time"

	"github.com/imamik/redstack/internal/resource"
)

// Logical names of the nodes in a Redmine plan.
const (
	NameVpc           = "Vpc"
	NameExistingVpc   = "ExistingVpc"
	NameAlb           = "Alb"
	NameExistingAlb   = "ExistingAlb"
	NameFileSystem    = "FileSystem"
	NameExecutionRole = "ExecutionRole"
	NameTaskRole      = "TaskRole"
	NameLogGroup      = "LogGroup"
	NameTaskDef       = "TaskDef"
	NameService       = "Service"
	NameSecret        = "PostgresSecret"
	NameSecurityRule  = "FileSystemIngressFromService"

	NameRedmineContainer  = "RedmineContainer"
	NamePostgresContainer = "PostgresContainer"
)

// Ports.
const (
	AppPort      = 3000
	ListenerPort = 80
	NFSPort      = 2049
)

const (
	// HealthCheckPath is the target group probe path of the application.
	HealthCheckPath = "/login"

	// MaxAZs is the number of availability zones a created network spans.
	MaxAZs = 2

	TaskCPU    = 512
	TaskMemory = 1024

	LogGroupName     = "/ecs/redmine"
	LogRetentionDays = 30

	DesiredCount      = 1
	MinHealthyPercent = 100
	MaxHealthyPercent = 200

	// TaskExecutionPrincipal assumes the execution and task roles.
	TaskExecutionPrincipal = "ecs-tasks.amazonaws.com"

	// DefaultImageDirectory is where the Dockerfiles live relative to the
	// synthesized plan.
	DefaultImageDirectory = "../redmine/"
)

// Secret describes the generated database credential.
type Secret struct {
	ResourceName   string
	Template       string
	GenerateKey    string
	UsernameField  string
	ExcludePunct   bool
	RemovalDestroy bool
}

// DatabaseSecret returns the credential template. The username is fixed; the
// password is generated by the backend.
func DatabaseSecret() Secret {
	return Secret{
		ResourceName:   "RedminePostgresSecret",
		Template:       `{"username":"postgres"}`,
		GenerateKey:    "password",
		UsernameField:  "username",
		ExcludePunct:   true,
		RemovalDestroy: true,
	}
}

// Volume is one logical volume of the shared file system.
type Volume struct {
	Name          string
	AccessPoint   string
	Container     string
	ContainerPath string
	Owner         resource.PosixOwner
}

// Path is the access point root directory of the volume.
func (v Volume) Path() string {
	return "/" + v.Name
}

var (
	appOwner = resource.PosixOwner{UID: 999, GID: 999, Permissions: "755"}
	dbOwner  = resource.PosixOwner{UID: 70, GID: 70, Permissions: "700"}
)

// Volumes returns the three logical volumes in mount order.
func Volumes() []Volume {
	return []Volume{
		{
			Name:          "redmine-files",
			AccessPoint:   "RedmineFilesAccessPoint",
			Container:     NameRedmineContainer,
			ContainerPath: "/usr/src/redmine/files",
			Owner:         appOwner,
		},
		{
			Name:          "redmine-git",
			AccessPoint:   "RedmineGitAccessPoint",
			Container:     NameRedmineContainer,
			ContainerPath: "/usr/src/redmine/repositories",
			Owner:         appOwner,
		},
		{
			Name:          "redmine-db",
			AccessPoint:   "PostgresAccessPoint",
			Container:     NamePostgresContainer,
			ContainerPath: "/var/lib/postgresql/data",
			Owner:         dbOwner,
		},
	}
}

// OwnerFor returns the ownership stamp of a volume.
func OwnerFor(volume string) (resource.PosixOwner, bool) {
	for _, v := range Volumes() {
		if v.Name == volume {
			return v.Owner, true
		}
	}
	return resource.PosixOwner{}, false
}

// Endpoint types.
const (
	EndpointInterface = "Interface"
	EndpointGateway   = "Gateway"
)

// Endpoint is one auxiliary private service endpoint.
type Endpoint struct {
	Name    string
	Service string
	Type    string
}

// Endpoints returns the fixed auxiliary endpoint list.
func Endpoints() []Endpoint {
	return []Endpoint{
		{Name: "SecretsManagerVpcEndpoint", Service: "secretsmanager", Type: EndpointInterface},
		{Name: "EcrVpcEndpoint", Service: "ecr.api", Type: EndpointInterface},
		{Name: "EcrDockerVpcEndpoint", Service: "ecr.dkr", Type: EndpointInterface},
		{Name: "LogsVpcEndpoint", Service: "logs", Type: EndpointInterface},
		{Name: "S3VpcEndpoint", Service: "s3", Type: EndpointGateway},
	}
}

// Container describes one container of the task definition.
type Container struct {
	Name         string
	Image        resource.ImageAsset
	Port         int
	StreamPrefix string
	Environment  map[string]string
	// Credentials maps environment variable names to secret fields.
	Credentials map[string]string
	HealthCheck resource.HealthCheck
	Essential   bool
}

// The two probes share interval, timeout, retries and start period.
const (
	probeInterval    = 30 * time.Second
	probeTimeout     = 3 * time.Second
	probeRetries     = 5
	probeStartPeriod = 10 * time.Second
)

func probe(cmd string) resource.HealthCheck {
	return resource.HealthCheck{
		Command:     []string{"CMD-SHELL", cmd},
		Interval:    probeInterval,
		Timeout:     probeTimeout,
		Retries:     probeRetries,
		StartPeriod: probeStartPeriod,
	}
}

// Containers returns the application and database containers. dir is the
// image build directory; empty means DefaultImageDirectory.
func Containers(dir string) []Container {
	if dir == "" {
		dir = DefaultImageDirectory
	}
	secret := DatabaseSecret()
	return []Container{
		{
			Name:         NameRedmineContainer,
			Image:        resource.ImageAsset{AssetName: "RedmineImage", Directory: dir, Dockerfile: "RedmineDockerfile"},
			Port:         AppPort,
			StreamPrefix: "redmine",
			Environment: map[string]string{
				"REDMINE_DB_POSTGRES":     "localhost",
				"REDMINE_PLUGINS_MIGRATE": "true",
			},
			Credentials: map[string]string{
				"REDMINE_DB_USERNAME": secret.UsernameField,
				"REDMINE_DB_PASSWORD": secret.GenerateKey,
			},
			HealthCheck: probe("curl -f localhost:3000/login || exit 1"),
			Essential:   true,
		},
		{
			Name:         NamePostgresContainer,
			Image:        resource.ImageAsset{AssetName: "RedminePostgresImage", Directory: dir, Dockerfile: "PostgresDockerfile"},
			StreamPrefix: "postgres",
			Credentials: map[string]string{
				"POSTGRES_USER":     secret.UsernameField,
				"POSTGRES_PASSWORD": secret.GenerateKey,
			},
			HealthCheck: probe("pg_isready -U postgres"),
			Essential:   true,
		},
	}
}

// FileSystemClientActions is the read-write grant on the shared file system.
func FileSystemClientActions() []string {
	return []string{
		"elasticfilesystem:ClientMount",
		"elasticfilesystem:ClientWrite",
		"elasticfilesystem:ClientRootAccess",
	}
}

// SecretReadActions lets the execution role inject credentials.
func SecretReadActions() []string {
	return []string{
		"secretsmanager:GetSecretValue",
		"secretsmanager:DescribeSecret",
	}
}
