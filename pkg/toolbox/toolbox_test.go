package toolbox

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

func TestLoad(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"mysql", "sqlserver", "tendbcluster"}, catalog.DBTypes())

	menus, err := catalog.Menus("tendbcluster")
	require.NoError(t, err)
	require.Len(t, menus, 10)
	assert.Equal(t, "spider_sql", menus[0].ID)
	assert.Equal(t, "SQL任务", menus[0].Name)
	assert.Equal(t, "spider_data_query", menus[9].ID)

	t.Run("EveryCloneableTicketTypeHasAnEntry", func(t *testing.T) {
		var linked []model.TicketType
		for _, dbType := range catalog.DBTypes() {
			menus, err := catalog.Menus(dbType)
			require.NoError(t, err)
			for _, menu := range menus {
				for _, child := range menu.Children {
					if child.TicketType != "" {
						linked = append(linked, child.TicketType)
					}
				}
			}
		}

		assert.ElementsMatch(t, model.TicketTypes, linked)
	})
}

func TestCatalog_Find(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		child, err := catalog.Find("tendbcluster", "spiderSlaveRebuild")

		require.NoError(t, err)
		assert.Equal(t, model.MenuChild{
			Name:           "重建从库",
			ID:             "spiderSlaveRebuild",
			ParentID:       "spider_cluster_maintain",
			DBConsoleValue: "tendbCluster.toolbox.slaveRebuild",
			TicketType:     model.TicketTypeTendbClusterRestoreSlave,
		}, child)
	})

	t.Run("GroupIDIsNotAnEntry", func(t *testing.T) {
		_, err := catalog.Find("tendbcluster", "spider_sql")

		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("UnknownDBType", func(t *testing.T) {
		_, err := catalog.Find("redis", "spiderSlaveRebuild")

		assert.True(t, errdef.IsNotFound(err))
	})
}

func TestParse(t *testing.T) {
	parse := func(menus string) error {
		_, err := Parse(fstest.MapFS{"mysql.yaml": {Data: []byte(menus)}})
		return err
	}

	t.Run("Valid", func(t *testing.T) {
		err := parse(`
- name: SQL
  id: sql
  children:
    - name: Execute
      id: execute
      parentId: sql
      dbConsoleValue: mysql.toolbox.sqlExecute
`)

		assert.NoError(t, err)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		err := parse(`
- name: SQL
  id: sql
  children:
    - name: Execute
      id: sql
      parentId: sql
      dbConsoleValue: mysql.toolbox.sqlExecute
`)

		assert.ErrorContains(t, err, `duplicate id "sql"`)
	})

	t.Run("WrongParent", func(t *testing.T) {
		err := parse(`
- name: SQL
  id: sql
  children:
    - name: Execute
      id: execute
      parentId: backup
      dbConsoleValue: mysql.toolbox.sqlExecute
`)

		assert.ErrorContains(t, err, `entry "execute" has parentId "backup" but belongs to "sql"`)
	})

	t.Run("MissingDBConsoleValue", func(t *testing.T) {
		err := parse(`
- name: SQL
  id: sql
  children:
    - name: Execute
      id: execute
      parentId: sql
`)

		assert.ErrorContains(t, err, `entry "execute" has no dbConsoleValue`)
	})

	t.Run("UnknownTicketType", func(t *testing.T) {
		err := parse(`
- name: SQL
  id: sql
  children:
    - name: Execute
      id: execute
      parentId: sql
      dbConsoleValue: mysql.toolbox.sqlExecute
      ticketType: MYSQL_HA_APPLY
`)

		assert.ErrorContains(t, err, `unknown ticket type "MYSQL_HA_APPLY"`)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		err := parse("- name: [")

		assert.ErrorContains(t, err, `error parsing menus of "mysql"`)
	})
}
