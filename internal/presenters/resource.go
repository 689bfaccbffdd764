package presenters

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

// ResourcePage Данные страницы ресурса.
type ResourcePage struct {
	Address    string
	ChildType  string
	ParentHref string
	Attributes []dmr.Property
	Children   []Link
}

// ModelBrowserPresenter Просмотр произвольного ресурса management-модели.
type ModelBrowserPresenter struct {
	dispatcher dmr.Dispatcher
}

// NewModelBrowserPresenter Конструктор ModelBrowserPresenter.
func NewModelBrowserPresenter(dispatcher dmr.Dispatcher) *ModelBrowserPresenter {
	return &ModelBrowserPresenter{dispatcher: dispatcher}
}

func (p *ModelBrowserPresenter) NameToken() string { return place.ModelBrowser }

func (p *ModelBrowserPresenter) PrepareFromRequest(ctx context.Context, req place.Request) (*place.Page, error) {
	raw := req.Parameter(place.AddressParam, "/")
	address, err := dmr.ParseAddress(raw)
	if err != nil {
		return nil, errs.NewErrInvalidParameter(place.AddressParam, raw, err)
	}

	data := ResourcePage{Address: address.String()}
	if !address.IsRoot() {
		data.ParentHref = modelBrowserHref(address.Parent())
	}

	if childType := req.Parameter(place.ChildTypeParam, ""); childType != "" {
		data.ChildType = childType
		data.Children, err = p.childrenOfType(ctx, address, childType)
		if err != nil {
			return nil, err
		}
		data.ParentHref = modelBrowserHref(address)
	} else {
		data.Attributes, err = readAttributes(ctx, p.dispatcher, address)
		if err != nil {
			return nil, err
		}
		data.Children, err = p.childTypes(ctx, address)
		if err != nil {
			return nil, err
		}
	}

	return &place.Page{Title: "Model Browser", Template: "resource", Data: data}, nil
}

func (p *ModelBrowserPresenter) childTypes(ctx context.Context, address dmr.ResourceAddress) ([]Link, error) {
	result, err := p.dispatcher.Execute(ctx, dmr.NewOperation(dmr.ReadChildrenTypes, address).Build())
	if err != nil {
		return nil, err
	}

	links := make([]Link, 0)
	for _, n := range result.AsList() {
		childType := n.AsString()
		href := place.NewRequest(place.ModelBrowser).
			With(place.AddressParam, address.String()).
			With(place.ChildTypeParam, childType).
			Href()
		links = append(links, Link{Title: childType, Href: href})
	}
	return links, nil
}

func (p *ModelBrowserPresenter) childrenOfType(ctx context.Context, address dmr.ResourceAddress, childType string) ([]Link, error) {
	op := dmr.NewOperation(dmr.ReadChildrenNames, address).Param(dmr.ChildType, childType).Build()
	result, err := p.dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	links := make([]Link, 0)
	for _, n := range result.AsList() {
		name := n.AsString()
		links = append(links, Link{Title: childType + "=" + name, Href: modelBrowserHref(address.Add(childType, name))})
	}
	return links, nil
}

func modelBrowserHref(address dmr.ResourceAddress) string {
	return place.NewRequest(place.ModelBrowser).With(place.AddressParam, address.String()).Href()
}

// readAttributes Атрибуты ресурса вместе с runtime-атрибутами.
func readAttributes(ctx context.Context, dispatcher dmr.Dispatcher, address dmr.ResourceAddress) ([]dmr.Property, error) {
	op := dmr.NewOperation(dmr.ReadResource, address).
		Param(dmr.AttributesOnly, true).
		Param(dmr.IncludeRuntime, true).
		Build()

	result, err := dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}
	return result.AsPropertyList(), nil
}
