package nacos

import (
	"context"
	"net/http"
	"net/url"
)

// ListNamespaces returns every namespace in server order.
// token may be empty when the server runs without authentication.
func (c *Client) ListNamespaces(ctx context.Context, token string) ([]Namespace, error) {
	const op = "list namespaces"

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   namespacesPath,
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	wire, err := decodeEnvelope[[]namespaceWire](op, data)
	if err != nil {
		return nil, err
	}

	namespaces := make([]Namespace, 0, len(wire))
	for _, w := range wire {
		namespaces = append(namespaces, w.toNamespace())
	}
	return namespaces, nil
}

// CreateNamespace creates a namespace. An empty id lets the server pick one.
func (c *Client) CreateNamespace(ctx context.Context, token, id, name, desc string) (bool, error) {
	const op = "create namespace"

	form := url.Values{}
	form.Set("customNamespaceId", id)
	form.Set("namespaceName", name)
	form.Set("namespaceDesc", desc)

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   namespacesPath,
		token:  token,
		form:   form,
	})
	if err != nil {
		return false, err
	}
	return parseBool(op, data)
}

// UpdateNamespace renames namespace id and replaces its description
func (c *Client) UpdateNamespace(ctx context.Context, token, id, name, desc string) (bool, error) {
	const op = "update namespace"

	form := url.Values{}
	form.Set("namespace", id)
	form.Set("namespaceShowName", name)
	form.Set("namespaceDesc", desc)

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   namespacesPath,
		token:  token,
		form:   form,
	})
	if err != nil {
		return false, err
	}
	return parseBool(op, data)
}

// DeleteNamespace removes namespace id together with its configuration
func (c *Client) DeleteNamespace(ctx context.Context, token, id string) (bool, error) {
	const op = "delete namespace"

	query := url.Values{}
	query.Set("namespaceId", id)

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   namespacesPath,
		token:  token,
		query:  query,
	})
	if err != nil {
		return false, err
	}
	return parseBool(op, data)
}

// CreateNamespaceChecked is CreateNamespace with a false result turned into an error
func (c *Client) CreateNamespaceChecked(ctx context.Context, token, id, name, desc string) error {
	ok, err := c.CreateNamespace(ctx, token, id, name, desc)
	return MustSucceed("create namespace", ok, err)
}

// UpdateNamespaceChecked is UpdateNamespace with a false result turned into an error
func (c *Client) UpdateNamespaceChecked(ctx context.Context, token, id, name, desc string) error {
	ok, err := c.UpdateNamespace(ctx, token, id, name, desc)
	return MustSucceed("update namespace", ok, err)
}

// DeleteNamespaceChecked is DeleteNamespace with a false result turned into an error
func (c *Client) DeleteNamespaceChecked(ctx context.Context, token, id string) error {
	ok, err := c.DeleteNamespace(ctx, token, id)
	return MustSucceed("delete namespace", ok, err)
}
