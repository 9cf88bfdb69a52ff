package app_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/andaru/sedml"
	"github.com/andaru/sedml/cmd/sedml/app"
	"github.com/andaru/sedml/sederr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const experiment = "../../../testdata/experiment.sedml"

const missingSource = `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">
<listOfModels><model id="m1"/></listOfModels>
</sedML>`

func run(t *testing.T, args ...string) (string, error) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, stderr bytes.Buffer
	cmd := app.New()
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	bad := writeFile(t, "bad.sedml", missingSource)
	malformed := writeFile(t, "malformed.sedml", `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4">`)
	for _, tc := range []struct {
		name     string
		args     []string
		contains []string
		fails    bool
	}{
		{
			name:     "clean",
			args:     []string{"check", experiment},
			contains: []string{experiment + ": ok"},
		},
		{
			name:     "problem",
			args:     []string{"check", bad},
			contains: []string{bad + ": error missing-attribute element:model attribute:source at 2:"},
			fails:    true,
		},
		{
			name:     "below threshold",
			args:     []string{"--fail-on", "fatal", "check", bad},
			contains: []string{"missing-attribute"},
		},
		{
			name:     "malformed",
			args:     []string{"check", malformed},
			contains: []string{"fatal xml-syntax"},
			fails:    true,
		},
		{
			name:     "several files",
			args:     []string{"check", experiment, bad},
			contains: []string{experiment + ": ok", bad + ": error"},
			fails:    true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			if tc.fails {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestCheckStructuredOutput(t *testing.T) {
	check := assert.New(t)
	bad := writeFile(t, "bad.sedml", missingSource)

	out, err := run(t, "-o", "json", "check", bad)
	check.Error(err)
	var reports []app.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	check.Equal(bad, reports[0].File)
	check.Equal(4, reports[0].Version)
	require.Len(t, reports[0].Problems, 1)
	check.Equal(sederr.CodeMissingAttribute, reports[0].Problems[0].Code)
	check.Equal(sederr.SeverityError, reports[0].Problems[0].Severity)
	check.Equal("source", reports[0].Problems[0].Attribute)

	out, err = run(t, "-o", "yaml", "check", bad)
	check.Error(err)
	var generic []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &generic))
	require.Len(t, generic, 1)
	problems, ok := generic[0]["problems"].([]interface{})
	require.True(t, ok)
	require.Len(t, problems, 1)
	check.Equal("missing-attribute", problems[0].(map[string]interface{})["code"])
}

func TestFmt(t *testing.T) {
	check := assert.New(t)
	d, err := sedml.ReadFile(experiment)
	require.NoError(t, err)
	want, err := sedml.WriteString(d)
	require.NoError(t, err)

	out, err := run(t, "fmt", experiment)
	require.NoError(t, err)
	check.Equal(want+"\n", out)

	path := writeFile(t, "compact.sedml", `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4"><listOfModels><model id="m1" source="m.xml"/></listOfModels></sedML>`)
	out, err = run(t, "fmt", "-w", "--indent", "\t", path)
	require.NoError(t, err)
	check.Empty(out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	check.Equal(`<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">
	<listOfModels>
		<model id="m1" source="m.xml"/>
	</listOfModels>
</sedML>
`, string(b))

	malformed := writeFile(t, "malformed.sedml", `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4"><listOfModels>`)
	_, err = run(t, "fmt", "-w", malformed)
	check.Error(err)
	b, err = os.ReadFile(malformed)
	require.NoError(t, err)
	check.Equal(`<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4"><listOfModels>`, string(b))
}

func TestConfig(t *testing.T) {
	check := assert.New(t)
	cfgFile := writeFile(t, "config.yaml", "indent: \"\"\nformat: json\nfailOn: fatal\n")
	bad := writeFile(t, "bad.sedml", missingSource)

	out, err := run(t, "--config", cfgFile, "check", bad)
	check.NoError(err)
	check.Contains(out, `"code": "missing-attribute"`)

	// flags win over the file
	out, err = run(t, "--config", cfgFile, "-o", "text", "--fail-on", "error", "check", bad)
	check.Error(err)
	check.Contains(out, "missing-attribute element:model")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "check", bad)
	check.Error(err)
	_, err = run(t, "-o", "xml", "check", bad)
	check.Error(err)
	_, err = run(t, "--fail-on", "loud", "check", bad)
	check.Error(err)
}

func TestUserConfig(t *testing.T) {
	check := assert.New(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sedml"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sedml", "config.yaml"), []byte("failOn: fatal\n"), 0o644))
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := app.GetConfig("")
	require.NoError(t, err)
	check.Equal("fatal", *cfg.FailOn)
	check.Equal("  ", *cfg.Indent)
	check.Equal("text", *cfg.Format)
	s, err := cfg.Severity()
	require.NoError(t, err)
	check.Equal(sederr.SeverityFatal, s)

	merged := &app.Config{}
	app.MergeConfig(merged, cfg)
	app.MergeConfig(merged, nil)
	check.Equal(cfg, merged)
}

func TestMalformedUserConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sedml", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("failOn: [fatal\n"), 0o644))
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := app.GetConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	cfg, err := app.ReadConfig(filepath.Join(dir, "none.yaml"))
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}
