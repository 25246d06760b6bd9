package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "u"
password = "p"
dbname = "appointments"
sslmode = "disable"

[auth_service]
url = "http://auth"
timeout = 10
username = "svc"
password = "secret"

[branch_service]
url = "http://branches"
timeout = 10

[journey_service]
url = "http://journeys"
timeout = 10

[metrics]
enabled = true
path = "/metrics"
service_name = "cfc-appointment-service"

[logs]
file = "logs/app.log"
level = "info"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "http://branches", cfg.BranchService.URL)
	assert.Equal(t, "svc", cfg.AuthService.Username)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t,
		"host=localhost port=5432 user=u password=p dbname=appointments sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MissingServerPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
[auth_service]
url = "http://auth"
[branch_service]
url = "http://branches"
[journey_service]
url = "http://journeys"
`))
	assert.ErrorContains(t, err, "http_port")
}

func TestLoad_MissingBranchServiceURL(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
http_port = 8080
[database]
host = "localhost"
[auth_service]
url = "http://auth"
[journey_service]
url = "http://journeys"
`))
	assert.ErrorContains(t, err, "branch_service.url")
}
