package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarItemsFiltersAndPreservesOrder(t *testing.T) {
	routes := []Route{
		{Path: "/a", Title: "A", Icon: "a", ShowInSidebar: true},
		{Path: "/a/:id", ShowInSidebar: false},                   // detail route
		{Path: "/b", Title: "B", ShowInSidebar: true},            // no icon
		{Path: "/c", Icon: "c", ShowInSidebar: true},             // no title
		{Path: "/d", Title: "D", Icon: "d", ShowInSidebar: false},
		{Path: "/e", Title: "E", Icon: "e", ShowInSidebar: true},
	}

	items := SidebarItems(routes)

	require.Len(t, items, 2)
	assert.Equal(t, "/a", items[0].Path)
	assert.Equal(t, "/e", items[1].Path)
}

func TestSidebarItemsEmptyTable(t *testing.T) {
	assert.Empty(t, SidebarItems(nil))
}

func TestDeveloperSidebarItemsPrefixesParentPath(t *testing.T) {
	parent := Route{
		Path: "/developer", Title: "Dev", Icon: "code", ShowInSidebar: true,
		Children: []Route{
			{Path: "app-key", Title: "Keys", Icon: "key", ShowInSidebar: true},
			{Path: "docs", Title: "Docs", Icon: "doc", ShowInSidebar: true},
			{Path: "sandbox", ShowInSidebar: false},
		},
	}

	items := DeveloperSidebarItems(parent)

	require.Len(t, items, 2)
	assert.Equal(t, "/developer/app-key", items[0].Path)
	assert.Equal(t, "/developer/docs", items[1].Path)
}

func TestDefaultTableHasNoDetailRoutesInSidebar(t *testing.T) {
	for _, item := range SidebarItems(Routes) {
		assert.NotContains(t, item.Path, ":id")
	}
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register("org-list", func() interface{} { return "org page" })

	f, err := reg.Resolve("org-list")
	require.NoError(t, err)
	assert.Equal(t, "org page", f())

	_, err = reg.Resolve("nope")
	assert.ErrorIs(t, err, ErrUnknownPage)
}
