package runtime

import (
	"context"
	"fmt"
	"sort"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

var (
	allServerConfigs = dmr.NewAddress(dmr.Host, "*", dmr.ServerConfig, "*")
	allServers       = dmr.NewAddress(dmr.Host, "*", dmr.Server, "*")

	hostOperation = dmr.NewOperation(dmr.ReadChildrenResources, dmr.Root).
			Param(dmr.ChildType, dmr.Host).
			Param(dmr.IncludeRuntime, true).
			Build()
	serverGroupOperation = dmr.NewOperation(dmr.ReadChildrenResources, dmr.Root).
				Param(dmr.ChildType, dmr.ServerGroup).
				Param(dmr.IncludeRuntime, true).
				Build()
)

// Topology Результат чтения топологии домена.
type Topology struct {
	// хосты, domain controller первым
	Hosts        []*Host        `json:"hosts"`
	ServerGroups []*ServerGroup `json:"server-groups"`
	// все серверы домена без определённого порядка
	Servers []*Server `json:"servers"`
	// шаг чтения конфигураций серверов или самих серверов завершился ошибкой,
	// Servers неполон
	Partial bool `json:"partial,omitempty"`
}

// Functions Функции чтения runtime-данных домена. Каждый вызов заново строит граф
// хостов, групп и серверов.
type Functions struct {
	env        *environment.Environment
	dispatcher dmr.Dispatcher
}

// NewFunctions Конструктор Functions.
func NewFunctions(env *environment.Environment, dispatcher dmr.Dispatcher) *Functions {
	return &Functions{
		env:        env,
		dispatcher: dispatcher,
	}
}

// Topology Читает хосты, группы и серверы одним composite-запросом.
// В standalone-режиме возвращает пустые коллекции без обращения к серверу.
func (f *Functions) Topology(ctx context.Context) (*Topology, error) {
	if f.env.IsStandalone() {
		return &Topology{Hosts: []*Host{}, ServerGroups: []*ServerGroup{}, Servers: []*Server{}}, nil
	}

	composite := dmr.NewComposite(
		hostOperation,
		serverGroupOperation,
		serverConfigOperation(dmr.Name, dmr.Group, dmr.Status, dmr.AutoStart, dmr.SocketBindingPortOffset),
		serverOperation(dmr.Name, dmr.Host, dmr.Group, dmr.ProfileName, dmr.AutoStart, dmr.SocketBindingPortOffset,
			dmr.Status, dmr.RunningMode, dmr.ServerState, dmr.SuspendState, dmr.UUID),
	)

	result, err := f.dispatcher.ExecuteComposite(ctx, composite)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать топологию: %w", err)
	}

	hostNodes, _ := stepResult(result, 0)
	groupNodes, _ := stepResult(result, 1)
	configNodes, configsOK := stepResult(result, 2)
	serverNodes, serversOK := stepResult(result, 3)

	hosts := orderedHosts(hostNodes.AsPropertyList())
	serverGroups := orderedServerGroups(groupNodes.AsPropertyList())

	servers := serverConfigs(configNodes.AsList())
	addServerAttributes(servers, serverNodes.AsList())

	all := servers.values()
	addServersToHosts(all, hosts)
	addServersToServerGroups(all, serverGroups)

	return &Topology{
		Hosts:        hosts,
		ServerGroups: serverGroups,
		Servers:      all,
		Partial:      !configsOK || !serversOK,
	}, nil
}

// HostsWithServers Хосты (domain controller первым) с их серверами.
func (f *Functions) HostsWithServers(ctx context.Context) ([]*Host, error) {
	if f.env.IsStandalone() {
		return []*Host{}, nil
	}

	composite := dmr.NewComposite(
		hostOperation,
		serverConfigOperation(dmr.Name, dmr.Group, dmr.Status),
		serverOperation(dmr.Name, dmr.RunningMode, dmr.ServerState, dmr.SuspendState),
	)

	result, err := f.dispatcher.ExecuteComposite(ctx, composite)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать хосты: %w", err)
	}

	hostNodes, _ := stepResult(result, 0)
	configNodes, _ := stepResult(result, 1)
	serverNodes, _ := stepResult(result, 2)

	hosts := orderedHosts(hostNodes.AsPropertyList())

	servers := serverConfigs(configNodes.AsList())
	addServerAttributes(servers, serverNodes.AsList())
	addServersToHosts(servers.values(), hosts)

	return hosts, nil
}

// ServerGroupsWithServers Группы серверов (по имени) с их серверами.
func (f *Functions) ServerGroupsWithServers(ctx context.Context) ([]*ServerGroup, error) {
	if f.env.IsStandalone() {
		return []*ServerGroup{}, nil
	}

	composite := dmr.NewComposite(
		serverGroupOperation,
		serverConfigOperation(dmr.Name, dmr.Group, dmr.Status),
		serverOperation(dmr.Name, dmr.RunningMode, dmr.ServerState, dmr.SuspendState),
	)

	result, err := f.dispatcher.ExecuteComposite(ctx, composite)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать группы серверов: %w", err)
	}

	groupNodes, _ := stepResult(result, 0)
	configNodes, _ := stepResult(result, 1)
	serverNodes, _ := stepResult(result, 2)

	serverGroups := orderedServerGroups(groupNodes.AsPropertyList())

	servers := serverConfigs(configNodes.AsList())
	addServerAttributes(servers, serverNodes.AsList())
	addServersToServerGroups(servers.values(), serverGroups)

	return serverGroups, nil
}

// RunningServersOfProfile Запущенные серверы, использующие профиль.
func (f *Functions) RunningServersOfProfile(ctx context.Context, profile string) ([]*Server, error) {
	if f.env.IsStandalone() {
		return []*Server{}, nil
	}

	op := dmr.NewOperation(dmr.Query, allServers).
		Param(dmr.Select, []string{dmr.Host, dmr.LaunchType, dmr.Name, dmr.ProfileName, dmr.RunningMode,
			dmr.ServerGroup, dmr.ServerState, dmr.SuspendState, dmr.UUID}).
		Param(dmr.Where, map[string]string{dmr.ProfileName: profile}).
		Build()

	result, err := f.dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать серверы профиля %s: %w", profile, err)
	}

	servers := make([]*Server, 0)
	for _, node := range result.AsList() {
		if node.IsFailure() {
			continue
		}
		address := dmr.AddressFromNode(node.Get(dmr.AddressKey))
		servers = append(servers, NewRunningServer(address.Parent().LastValue(), node.Get(dmr.ResultKey)))
	}

	return servers, nil
}

func serverConfigOperation(attributes ...string) dmr.Operation {
	return dmr.NewOperation(dmr.Query, allServerConfigs).Param(dmr.Select, attributes).Build()
}

func serverOperation(attributes ...string) dmr.Operation {
	return dmr.NewOperation(dmr.Query, allServers).Param(dmr.Select, attributes).Build()
}

// Результат шага; для проваленного шага - неопределённый узел и false.
func stepResult(result dmr.CompositeResult, i int) (dmr.ModelNode, bool) {
	step := result.Step(i)
	if step.IsFailure() {
		logger.Log.Warn("Шаг чтения топологии завершился ошибкой",
			logger.Int("step", i+1),
			logger.String("failure", step.FailureDescription()),
		)
		return dmr.ModelNode{}, false
	}

	return step.Get(dmr.ResultKey), true
}

// Хосты по имени, domain controller первым.
func orderedHosts(properties []dmr.Property) []*Host {
	hosts := make([]*Host, 0, len(properties))
	for _, p := range properties {
		hosts = append(hosts, NewHost(p))
	}

	sort.SliceStable(hosts, func(i, j int) bool {
		if hosts[i].DomainController != hosts[j].DomainController {
			return hosts[i].DomainController
		}
		return hosts[i].Name < hosts[j].Name
	})

	return hosts
}

func orderedServerGroups(properties []dmr.Property) []*ServerGroup {
	groups := make([]*ServerGroup, 0, len(properties))
	for _, p := range properties {
		groups = append(groups, NewServerGroup(p))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return groups
}

// serverIndex Серверы по ключу host/name с сохранением порядка появления.
type serverIndex struct {
	order []string
	byKey map[string]*Server
}

func (si *serverIndex) values() []*Server {
	out := make([]*Server, 0, len(si.order))
	for _, key := range si.order {
		out = append(out, si.byKey[key])
	}
	return out
}

func serverConfigs(nodes []dmr.ModelNode) *serverIndex {
	index := &serverIndex{byKey: make(map[string]*Server)}

	for _, node := range nodes {
		if node.IsFailure() {
			continue
		}

		address := dmr.AddressFromNode(node.Get(dmr.AddressKey))
		server := NewServerFromConfig(address.Parent().LastValue(), node.Get(dmr.ResultKey))
		if server.Name() == "" {
			continue
		}

		if _, exists := index.byKey[server.Key()]; !exists {
			index.order = append(index.order, server.Key())
		}
		index.byKey[server.Key()] = server
	}

	return index
}

func addServerAttributes(index *serverIndex, nodes []dmr.ModelNode) {
	for _, node := range nodes {
		if node.IsFailure() {
			continue
		}

		address := dmr.AddressFromNode(node.Get(dmr.AddressKey))
		key := address.Parent().LastValue() + "/" + address.LastValue()
		if server, ok := index.byKey[key]; ok {
			server.AddServerAttributes(node.Get(dmr.ResultKey))
		}
	}
}

func addServersToHosts(servers []*Server, hosts []*Host) {
	byHost := make(map[string][]*Server)
	for _, s := range servers {
		byHost[s.Host()] = append(byHost[s.Host()], s)
	}

	for _, h := range hosts {
		for _, s := range byHost[h.Name] {
			h.addServer(s)
		}
	}
}

func addServersToServerGroups(servers []*Server, groups []*ServerGroup) {
	byGroup := make(map[string][]*Server)
	for _, s := range servers {
		byGroup[s.ServerGroup()] = append(byGroup[s.ServerGroup()], s)
	}

	for _, g := range groups {
		for _, s := range byGroup[g.Name] {
			g.addServer(s)
		}
	}
}
