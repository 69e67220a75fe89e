package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableforge/tableforge/internal/catalog"
	"github.com/tableforge/tableforge/internal/model"
)

// ---------------------------------------------------------------------------
// SQL DDL
// ---------------------------------------------------------------------------

func TestFromSQL(t *testing.T) {
	ddl := `
-- user accounts
create table if not exists ` + "`test_db`.`t_user`" + `
(
    ` + "`id`" + ` bigint not null auto_increment comment 'primary key' primary key,
    ` + "`name`" + ` varchar(20) not null comment 'user name',
    ` + "`balance`" + ` decimal(10,2) default '0.00' null,
    ` + "`created_at`" + ` timestamp default CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP comment 'creation time'
) comment 'user table';`

	schema, err := FromSQL(ddl)
	require.NoError(t, err)

	assert.Equal(t, "test_db", schema.DBName)
	assert.Equal(t, "t_user", schema.TableName)
	assert.Equal(t, "user table", schema.TableComment)
	assert.Equal(t, model.DefaultMockRowCount, schema.MockRowCount)
	require.Len(t, schema.Fields, 4)

	id := schema.Fields[0]
	assert.Equal(t, "id", id.FieldName)
	assert.Equal(t, "bigint", id.FieldType)
	assert.True(t, id.NotNull)
	assert.True(t, id.AutoIncrement)
	assert.True(t, id.PrimaryKey)
	assert.Equal(t, "primary key", id.Comment)
	assert.Equal(t, model.StrategyNone, id.MockStrategy)

	name := schema.Fields[1]
	assert.Equal(t, "varchar(20)", name.FieldType)
	assert.True(t, name.NotNull)
	assert.False(t, name.PrimaryKey)

	balance := schema.Fields[2]
	assert.Equal(t, "decimal(10,2)", balance.FieldType)
	assert.Equal(t, "0.00", balance.DefaultValue)
	assert.False(t, balance.NotNull)

	created := schema.Fields[3]
	assert.Equal(t, "CURRENT_TIMESTAMP", created.DefaultValue)
	assert.Equal(t, "CURRENT_TIMESTAMP", created.OnUpdate)
	assert.Equal(t, "creation time", created.Comment)
}

func TestFromSQLTableLevelPrimaryKey(t *testing.T) {
	ddl := `CREATE TABLE orders (
		order_id INT NOT NULL,
		sku VARCHAR(64) NOT NULL,
		note TEXT,
		PRIMARY KEY (order_id),
		KEY idx_sku (sku),
		UNIQUE KEY uniq_note (note(32))
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COMMENT='order lines'`

	schema, err := FromSQL(ddl)
	require.NoError(t, err)

	assert.Equal(t, "", schema.DBName)
	assert.Equal(t, "orders", schema.TableName)
	assert.Equal(t, "order lines", schema.TableComment)
	require.Len(t, schema.Fields, 3)
	assert.True(t, schema.Fields[0].PrimaryKey)
	assert.False(t, schema.Fields[1].PrimaryKey)
	assert.Equal(t, "int", schema.Fields[0].FieldType)
}

func TestFromSQLUniqueColumnBecomesPrimary(t *testing.T) {
	schema, err := FromSQL(`create table t (code varchar(10) unique not null)`)
	require.NoError(t, err)
	require.Len(t, schema.Fields, 1)
	assert.True(t, schema.Fields[0].PrimaryKey)
}

func TestFromSQLDefaultNullDropped(t *testing.T) {
	schema, err := FromSQL(`create table t (note text default null)`)
	require.NoError(t, err)
	assert.Equal(t, "", schema.Fields[0].DefaultValue)
}

func TestFromSQLUnsignedType(t *testing.T) {
	schema, err := FromSQL(`create table t (age int(3) unsigned not null)`)
	require.NoError(t, err)
	assert.Equal(t, "int(3) unsigned", schema.Fields[0].FieldType)
}

func TestFromSQLParseErrors(t *testing.T) {
	cases := []struct {
		name string
		ddl  string
	}{
		{"not create table", "select * from t"},
		{"unterminated columns", "create table t (id int"},
		{"missing type", "create table t (id,)"},
		{"garbage attribute", "create table t (id int wat)"},
		{"unterminated string", "create table t (id int comment 'oops)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromSQL(tc.ddl)
			require.Error(t, err)
			assert.True(t, model.IsKind(err, model.KindParse), "got %v", err)
		})
	}
}

// ---------------------------------------------------------------------------
// Spreadsheet
// ---------------------------------------------------------------------------

const sheetHeader = "dbName,tableName,tableComment,mockRowCount,fieldName*,fieldType*,defaultValue,notNull,comment,primaryKey,autoIncrement,mockStrategy,mockParams,onUpdate"

func TestFromSpreadsheet(t *testing.T) {
	input := sheetHeader + "\n" +
		"shop_db,t_item,items,30,id,bigint,,1,primary key,1,1,,,\n" +
		",,,,name,varchar(50),,true,item name,,,random,name,\n" +
		",,,,price,decimal(10,2),0.00,,,,,fixed,9.99,\n"

	schema, err := FromSpreadsheet(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "shop_db", schema.DBName)
	assert.Equal(t, "t_item", schema.TableName)
	assert.Equal(t, "items", schema.TableComment)
	assert.Equal(t, 30, schema.MockRowCount)
	require.Len(t, schema.Fields, 3)

	id := schema.Fields[0]
	assert.True(t, id.NotNull)
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.AutoIncrement)
	assert.Equal(t, model.StrategyNone, id.MockStrategy)

	name := schema.Fields[1]
	assert.True(t, name.NotNull)
	assert.Equal(t, model.StrategyRandom, name.MockStrategy)
	assert.Equal(t, "name", name.MockParams)

	price := schema.Fields[2]
	assert.Equal(t, "0.00", price.DefaultValue)
	assert.Equal(t, model.StrategyFixed, price.MockStrategy)
	assert.False(t, price.NotNull)
}

func TestFromSpreadsheetMetadataDefaults(t *testing.T) {
	input := sheetHeader + "\n" +
		",,,,id,int,,,,,,,,\n"

	schema, err := FromSpreadsheet(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "test_db", schema.DBName)
	assert.Equal(t, "test_table", schema.TableName)
	assert.Equal(t, "imported table", schema.TableComment)
	assert.Equal(t, model.DefaultMockRowCount, schema.MockRowCount)
}

func TestFromSpreadsheetBlankRowStops(t *testing.T) {
	input := sheetHeader + "\n" +
		",,,,id,int,,,,,,,,\n" +
		",,,,,,,,,,,,,\n" +
		",,,,ghost,int,,,,,,,,\n"

	schema, err := FromSpreadsheet(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, schema.Fields, 1)
	assert.Equal(t, "id", schema.Fields[0].FieldName)
}

func TestFromSpreadsheetHeaderMismatch(t *testing.T) {
	// Header drops the fieldType column, shifting everything after it.
	bad := "dbName,tableName,tableComment,mockRowCount,fieldName,defaultValue,notNull,comment,primaryKey,autoIncrement,mockStrategy,mockParams,onUpdate"
	_, err := FromSpreadsheet(strings.NewReader(bad + "\n,,,,id,int,,,,,,,,\n"))
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))
}

func TestFromSpreadsheetMissingFieldName(t *testing.T) {
	input := sheetHeader + "\n" +
		",,,,,int,,,,,,,,\n"
	_, err := FromSpreadsheet(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))
}

func TestFromSpreadsheetEmpty(t *testing.T) {
	_, err := FromSpreadsheet(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))

	_, err = FromSpreadsheet(strings.NewReader(sheetHeader + "\n"))
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))
}

// ---------------------------------------------------------------------------
// Labels
// ---------------------------------------------------------------------------

func TestFromLabelsUnknownWords(t *testing.T) {
	cat := catalog.NewMemoryCatalog(nil)
	schema, err := FromLabels(context.Background(), "城市,未知字段", cat)
	require.NoError(t, err)

	assert.Equal(t, "my_table", schema.TableName)
	assert.Equal(t, "generated table", schema.TableComment)
	assert.Equal(t, model.DefaultMockRowCount, schema.MockRowCount)
	require.Len(t, schema.Fields, 2)
	for i, want := range []string{"城市", "未知字段"} {
		f := schema.Fields[i]
		assert.Equal(t, want, f.FieldName)
		assert.Equal(t, "text", f.FieldType)
		assert.Equal(t, want, f.Comment)
		assert.False(t, f.NotNull)
		assert.Equal(t, model.StrategyNone, f.MockStrategy)
	}
}

func TestFromLabelsCatalogHit(t *testing.T) {
	cat := catalog.NewMemoryCatalog(map[string]string{
		"城市": `{"fieldName":"city","fieldType":"varchar(30)","notNull":true,"comment":"城市","primaryKey":false,"autoIncrement":false,"mockStrategy":"random","mockParams":"city"}`,
	})
	schema, err := FromLabels(context.Background(), "城市，备注", cat)
	require.NoError(t, err)
	require.Len(t, schema.Fields, 2)

	city := schema.Fields[0]
	assert.Equal(t, "city", city.FieldName)
	assert.Equal(t, "varchar(30)", city.FieldType)
	assert.True(t, city.NotNull)
	assert.Equal(t, model.StrategyRandom, city.MockStrategy)

	assert.Equal(t, "备注", schema.Fields[1].FieldName)
	assert.Equal(t, "text", schema.Fields[1].FieldType)
}

func TestFromLabelsMalformedCatalogEntry(t *testing.T) {
	cat := catalog.NewMemoryCatalog(map[string]string{"城市": `{not json`})
	_, err := FromLabels(context.Background(), "城市", cat)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindParse))
}

type failingCatalog struct{}

func (failingCatalog) Lookup(context.Context, string) (catalog.Entry, error) {
	return catalog.Entry{}, model.LookupError(nil, "catalog unavailable")
}

func TestFromLabelsLookupFailureFallsBack(t *testing.T) {
	schema, err := FromLabels(context.Background(), "城市", failingCatalog{})
	require.NoError(t, err)
	require.Len(t, schema.Fields, 1)
	assert.Equal(t, "text", schema.Fields[0].FieldType)
}

func TestFromLabelsLimits(t *testing.T) {
	_, err := FromLabels(context.Background(), "", nil)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))

	words := make([]string, 21)
	for i := range words {
		words[i] = "w"
	}
	_, err = FromLabels(context.Background(), strings.Join(words, ","), nil)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))
}
