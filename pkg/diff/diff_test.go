package diff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type child struct {
	Name string `json:"name"`
}

type record struct {
	Id         int64      `json:"id"`
	Name       string     `json:"name"`
	Active     bool       `json:"active"`
	Collection *string    `json:"collection"`
	Seen       *time.Time `json:"seen"`
	Note       string     `json:"-"`
	Children   []child    `json:"children"`
	Parent     *child     `json:"parent"`
	UpdateTime time.Time  `json:"update_time"`
}

func strPtr(s string) *string { return &s }

func TestChangesNoop(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := record{Id: 1, Name: "p", Active: true, Collection: strPtr("Q0001-x"), Seen: &now}
	b := a
	b.Seen = &now
	b.Collection = strPtr("Q0001-x")

	changes, err := Changes(&a, &b)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestChangesReportsDesiredValues(t *testing.T) {
	a := record{Id: 1, Name: "old", Active: true, Collection: strPtr("Q1-a")}
	b := record{Id: 2, Name: "new", Active: true, Collection: nil, Note: "ignored",
		Children: []child{{Name: "c"}}, Parent: &child{Name: "p"}, UpdateTime: time.Now()}

	changes, err := Changes(a, b)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name":       "new",
		"collection": (*string)(nil),
	}, changes)
}

func TestChangesExclude(t *testing.T) {
	a := record{Name: "old", Collection: strPtr("Q1-a")}
	b := record{Name: "new", Collection: strPtr("Q2-b")}

	changes, err := Changes(a, b, "collection")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "new"}, changes)
}

func TestChangesTypeMismatch(t *testing.T) {
	_, err := Changes(record{}, child{})
	assert.Error(t, err)

	_, err = Changes((*record)(nil), record{})
	assert.Error(t, err)

	_, err = Changes(1, 2)
	assert.Error(t, err)
}
