package columns

// Id колонок finder'а.
const (
	ConfigurationColumn = "configuration"
	ProfileColumn       = "profile"
	SubsystemColumn     = "subsystem"
	InterfaceColumn     = "interface"
	SocketBindingColumn = "socket-binding"
	BrowseByColumn      = "domain-browse-by"
	HostColumn          = "host"
	ServerGroupColumn   = "server-group"
	ServerColumn        = "server"
	ServerMonitorColumn = "server-monitor"
)

// Заголовки.
const (
	Configuration    = "Configuration"
	Profiles         = "Profiles"
	Subsystems       = "Subsystems"
	Interfaces       = "Interfaces"
	SocketBindings   = "Socket Bindings"
	Paths            = "Paths"
	SystemProperties = "System Properties"
	BrowseBy         = "Browse By"
	Hosts            = "Hosts"
	ServerGroups     = "Server Groups"
	Servers          = "Servers"
	Monitor          = "Monitor"
	View             = "View"
	List             = "List"
)
