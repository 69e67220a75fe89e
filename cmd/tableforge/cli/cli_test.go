package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "tableforge test") {
		t.Errorf("version output = %q", out)
	}
}

func TestFieldCommand(t *testing.T) {
	out, err := runCommand(t, "field", "id",
		"-t", "bigint", "--not-null", "--auto-increment", "--primary-key", "-c", "primary key")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	want := "`id` bigint not null auto_increment comment 'primary key' primary key"
	if strings.TrimSpace(out) != want {
		t.Errorf("field output = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestParseSQLCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	ddl := "create table t_user (id bigint not null primary key, name varchar(20) not null)"
	if err := os.WriteFile(path, []byte(ddl), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "parse", "sql", path)
	if err != nil {
		t.Fatalf("parse sql: %v", err)
	}
	if !strings.Contains(out, "tableName: t_user") {
		t.Errorf("parse output missing table name: %q", out)
	}
	if !strings.Contains(out, "fieldName: name") {
		t.Errorf("parse output missing field: %q", out)
	}
}

func TestGenerateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	schema := `
tableName: t_user
mockRowCount: 10
fields:
  - fieldName: id
    fieldType: bigint
    notNull: true
    primaryKey: true
    autoIncrement: true
  - fieldName: name
    fieldType: varchar(20)
    notNull: true
    mockStrategy: random
    mockParams: name
`
	if err := os.WriteFile(path, []byte(schema), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "generate", "-f", path, "--seed", "1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "create table if not exists `t_user`") {
		t.Errorf("missing CREATE TABLE in output: %q", out)
	}
	if !strings.Contains(out, "INSERT INTO") {
		t.Errorf("missing INSERT statements in output: %q", out)
	}
	if !strings.Contains(out, "export interface TUser") {
		t.Errorf("missing TypeScript output: %q", out)
	}
}
