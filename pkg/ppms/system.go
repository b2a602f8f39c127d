package ppms

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

func (c *Client) ListCores(ctx context.Context) ([]Core, error) {
	if c.opts.CoresQuery == "" {
		return nil, nil
	}
	form := url.Values{}
	form.Set("action", c.opts.CoresQuery)
	form.Set("outformat", "json")

	var cores []Core
	if err := c.PostJSON(ctx, apiAPI2, form, &cores); err != nil {
		return nil, err
	}
	return cores, nil
}

// ListSystems parses the getsystems CSV: core id, system id, type, name.
func (c *Client) ListSystems(ctx context.Context) ([]System, error) {
	form := url.Values{}
	form.Set("action", "getsystems")

	rows, err := c.PostCSV(ctx, apiPUMAPI, form)
	if err != nil {
		return nil, err
	}
	systems := make([]System, 0, len(rows))
	for _, row := range rows {
		if len(row) <= 3 {
			continue
		}
		coreID, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if err != nil {
			continue
		}
		systems = append(systems, System{
			CoreID: coreID,
			ID:     id,
			Type:   strings.TrimSpace(row[2]),
			Name:   strings.TrimSpace(row[3]),
		})
	}
	return systems, nil
}

// ListSystemPIDs drops rows without a PID.
func (c *Client) ListSystemPIDs(ctx context.Context) ([]SystemPID, error) {
	form := url.Values{}
	form.Set("action", c.opts.SystemPIDQuery)
	form.Set("outformat", "json")

	var rows []SystemPID
	if err := c.PostJSON(ctx, apiAPI2, form, &rows); err != nil {
		return nil, err
	}
	pids := rows[:0]
	for _, r := range rows {
		if strings.TrimSpace(r.PID) != "" {
			pids = append(pids, r)
		}
	}
	return pids, nil
}
