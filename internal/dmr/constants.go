package dmr

// Имена операций management-модели.
const (
	Composite                  = "composite"
	ReadResource               = "read-resource"
	ReadChildrenResources      = "read-children-resources"
	ReadChildrenNames          = "read-children-names"
	ReadChildrenTypes          = "read-children-types"
	ReadResourceDescription    = "read-resource-description"
	Query                      = "query"
	Remove                     = "remove"
	Start                      = "start"
	Stop                       = "stop"
	Reload                     = "reload"
	Restart                    = "restart"
	Suspend                    = "suspend"
	Resume                     = "resume"
	ReadAttributeOperationName = "read-attribute"
)

// Служебные поля запросов и ответов.
const (
	OperationKey       = "operation"
	AddressKey         = "address"
	OutcomeKey         = "outcome"
	ResultKey          = "result"
	FailureDescription = "failure-description"
	Steps              = "steps"
	OperationHeaders   = "operation-headers"
	Roles              = "roles"
	Success            = "success"
	Failed             = "failed"
)

// Параметры операций.
const (
	ChildType      = "child-type"
	IncludeRuntime = "include-runtime"
	AttributesOnly = "attributes-only"
	Select         = "select"
	Where          = "where"
	Blocking       = "blocking"
	Timeout        = "timeout"
	Recursive      = "recursive"
)

// Типы ресурсов и атрибуты.
const (
	Host                    = "host"
	ServerConfig            = "server-config"
	Server                  = "server"
	ServerGroup             = "server-group"
	Profile                 = "profile"
	Subsystem               = "subsystem"
	Interface               = "interface"
	SocketBindingGroup      = "socket-binding-group"
	SocketBinding           = "socket-binding"
	ProcessType             = "process-type"
	Path                    = "path"
	SystemProperty          = "system-property"
	Name                    = "name"
	Group                   = "group"
	Status                  = "status"
	AutoStart               = "auto-start"
	SocketBindingPortOffset = "socket-binding-port-offset"
	ProfileName             = "profile-name"
	RunningMode             = "running-mode"
	ServerState             = "server-state"
	SuspendState            = "suspend-state"
	LaunchType              = "launch-type"
	Master                  = "master"
	DomainController        = "domain-controller"
	Local                   = "local"
	HostState               = "host-state"
	ProductName             = "product-name"
	ProductVersion          = "product-version"
	ReleaseVersion          = "release-version"
	ManagementMajorVersion  = "management-major-version"
	ManagementMinorVersion  = "management-minor-version"
	Description             = "description"
	UUID                    = "uuid"
	Value                   = "value"
)
