package nacos

import (
	"context"
	"net/http"
	"net/url"
)

// configQuery builds the dataId/group/tenant parameters shared by the config endpoints.
// The public namespace is addressed by omitting tenant.
func configQuery(namespaceID, dataID, group string) url.Values {
	if group == "" {
		group = DefaultGroup
	}
	q := url.Values{}
	if namespaceID != "" {
		q.Set("tenant", namespaceID)
	}
	q.Set("dataId", dataID)
	q.Set("group", group)
	return q
}

// ListConfigs returns the configuration entries of a namespace
func (c *Client) ListConfigs(ctx context.Context, token, namespaceID string) ([]ConfigEntry, error) {
	const op = "list configs"

	query := url.Values{}
	query.Set("namespaceId", namespaceID)

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   configListPath,
		token:  token,
		query:  query,
	})
	if err != nil {
		return nil, err
	}

	wire, err := decodeEnvelope[[]configWire](op, data)
	if err != nil {
		return nil, err
	}

	entries := make([]ConfigEntry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, w.toConfigEntry())
	}
	return entries, nil
}

// GetConfig returns the raw content of one configuration entry
func (c *Client) GetConfig(ctx context.Context, token, namespaceID, dataID, group string) (string, error) {
	data, err := c.do(ctx, request{
		op:     "get config",
		method: http.MethodGet,
		path:   configsPath,
		token:  token,
		query:  configQuery(namespaceID, dataID, group),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PublishConfig creates or replaces a configuration entry.
// configType is the content format (yaml, json, properties, text...); empty leaves it to the server.
func (c *Client) PublishConfig(ctx context.Context, token, namespaceID, dataID, group, content, configType string) (bool, error) {
	const op = "publish config"

	form := configQuery(namespaceID, dataID, group)
	form.Set("content", content)
	if configType != "" {
		form.Set("type", configType)
	}

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   configsPath,
		token:  token,
		form:   form,
	})
	if err != nil {
		return false, err
	}
	return parseBool(op, data)
}

// DeleteConfig removes one configuration entry
func (c *Client) DeleteConfig(ctx context.Context, token, namespaceID, dataID, group string) (bool, error) {
	const op = "delete config"

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   configsPath,
		token:  token,
		query:  configQuery(namespaceID, dataID, group),
	})
	if err != nil {
		return false, err
	}
	return parseBool(op, data)
}

// PublishConfigChecked is PublishConfig with a false result turned into an error
func (c *Client) PublishConfigChecked(ctx context.Context, token, namespaceID, dataID, group, content, configType string) error {
	ok, err := c.PublishConfig(ctx, token, namespaceID, dataID, group, content, configType)
	return MustSucceed("publish config", ok, err)
}

// DeleteConfigChecked is DeleteConfig with a false result turned into an error
func (c *Client) DeleteConfigChecked(ctx context.Context, token, namespaceID, dataID, group string) error {
	ok, err := c.DeleteConfig(ctx, token, namespaceID, dataID, group)
	return MustSucceed("delete config", ok, err)
}
