package ppms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func (c *Client) ListProjects(ctx context.Context, activeOnly bool) ([]Project, error) {
	form := url.Values{}
	form.Set("action", "getprojects")
	form.Set("format", "json")
	if activeOnly {
		form.Set("active", "true")
	}

	var projects []Project
	if err := c.PostJSON(ctx, apiPUMAPI, form, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListProjectMembers parses the getprojectmember CSV: user id in column 1, login in column 8.
func (c *Client) ListProjectMembers(ctx context.Context, projectID int64) ([]Member, error) {
	form := url.Values{}
	form.Set("action", "getprojectmember")
	form.Set("projectid", strconv.FormatInt(projectID, 10))

	rows, err := c.PostCSV(ctx, apiPUMAPI, form)
	if err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(rows))
	for _, row := range rows {
		if len(row) <= 8 {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if err != nil {
			continue
		}
		login := strings.TrimSpace(row[8])
		if id > 0 && login != "" {
			members = append(members, Member{ID: id, Login: login})
		}
	}
	return members, nil
}

// GetProjectCollection returns "" when the project has no collection.
func (c *Client) GetProjectCollection(ctx context.Context, coreID, projectID int64) (string, error) {
	form := url.Values{}
	form.Set("action", c.opts.QCollectionAction)
	form.Set("projectId", strconv.FormatInt(projectID, 10))
	form.Set("coreid", strconv.FormatInt(coreID, 10))
	form.Set("outformat", "json")

	var rows []map[string]json.RawMessage
	if err := c.PostJSON(ctx, apiAPI2, form, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rawString(rows[0][c.opts.QCollectionField]), nil
}

// ListProjectCollections queries every configured core.
func (c *Client) ListProjectCollections(ctx context.Context) ([]ProjectCollection, error) {
	var out []ProjectCollection
	for _, coreID := range c.opts.CoreIDs {
		form := url.Values{}
		form.Set("action", c.opts.QCollectionsAction)
		form.Set("coreid", strconv.FormatInt(coreID, 10))
		form.Set("outformat", "json")

		var rows []map[string]json.RawMessage
		if err := c.PostJSON(ctx, apiAPI2, form, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			var core, project Int
			if err := core.UnmarshalJSON(row["PlateformID"]); err != nil {
				return nil, fmt.Errorf("ppms %s: PlateformID: %w", form.Get("action"), err)
			}
			if err := project.UnmarshalJSON(row["ProjectRef"]); err != nil {
				return nil, fmt.Errorf("ppms %s: ProjectRef: %w", form.Get("action"), err)
			}
			out = append(out, ProjectCollection{
				CoreID:     int64(core),
				ProjectID:  int64(project),
				Collection: rawString(row[c.opts.QCollectionField]),
			})
		}
	}
	return out, nil
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	if string(raw) == "null" {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func decode(body []byte, form url.Values, result interface{}) error {
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("ppms %s: decode: %w", form.Get("action"), err)
	}
	return nil
}
