package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaparooProject/go-wiitdb/catalog"
)

const testDatabase = `<?xml version="1.0" encoding="UTF-8"?>
<datafile>
	<game name="killer7">
		<id>GK7E08</id>
		<type>GameCube</type>
		<region>NTSC-U</region>
		<locale lang="EN"><title>killer7</title></locale>
		<rom version="1.0 Disc 1" name="killer7 (USA) (Disc 1).iso" size="1459978240" crc="11111111" md5="aa" sha1="bb"/>
		<rom version="1.0 Disc 2" name="killer7 (USA) (Disc 2).iso" size="1459978240" crc="22222222" md5="cc" sha1="dd"/>
	</game>
	<game name="Wii Sports">
		<id>RSPE01</id>
		<region>NTSC-U</region>
		<rom version="" name="Wii Sports (USA).iso" size="4699979776" crc="33333333" md5="ee" sha1="ff"/>
	</game>
</datafile>
`

type cliEnv struct {
	config string
	cache  string
	source string
	dir    string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()

	dir := t.TempDir()
	env := cliEnv{
		config: filepath.Join(dir, "config.yaml"),
		cache:  filepath.Join(dir, "cache", "wiitdb.json.gz"),
		source: filepath.Join(dir, "wiitdb.xml"),
		dir:    dir,
	}
	require.NoError(t, os.WriteFile(env.config, []byte("log:\n  level: error\n"), 0o600))
	require.NoError(t, os.WriteFile(env.source, []byte(testDatabase), 0o600))
	return env
}

func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", e.config, "--cache", e.cache, "--source", e.source}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wiitdb version: dev")
}

func TestUpdateCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "update")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 titles (0 unresolved) and 9 digests")
	assert.FileExists(t, env.cache)
}

func TestLookupCommand_JSON(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "lookup", "--sha1", "DD", "--json")
	require.NoError(t, err)

	var record catalog.GameRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "GK7E08", record.GameID)
	assert.Equal(t, "killer7", record.Title)

	versions, ok := record.Versions.Map()
	require.True(t, ok)
	assert.Equal(t, "cc", versions["1.0"][catalog.SlotDisc2].MD5)
}

func TestLookupCommand_Table(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "lookup", "RSPE01")
	require.NoError(t, err)
	assert.Contains(t, out, "RSPE01  Wii Sports")
	assert.Contains(t, out, "4.4 GiB")
	assert.Contains(t, out, "33333333")
}

func TestLookupCommand_Errors(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "lookup")
	require.Error(t, err)

	_, err = env.run(t, "lookup", "ZZZZ01")
	require.ErrorIs(t, err, errNoMatch)
}

func TestStatsCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "stats", "--json")
	require.NoError(t, err)

	var stats catalog.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.Titles)
	assert.Equal(t, 3, stats.Discs)
	assert.Equal(t, 1, stats.Platforms["GameCube"])
	assert.Equal(t, 1, stats.Platforms["Wii"])
}

func TestIdentifyCommand(t *testing.T) {
	env := newCLIEnv(t)

	header := make([]byte, 0x440)
	copy(header, "GK7E08")
	header[6] = 1
	copy(header[0x1C:], []byte{0xC2, 0x33, 0x9F, 0x3D})
	copy(header[0x20:], "killer7")
	image := filepath.Join(env.dir, "killer7.iso")
	require.NoError(t, os.WriteFile(image, header, 0o600))

	out, err := env.run(t, "identify", "--no-hash", "--json", image)
	require.NoError(t, err)

	var results []identifyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "GK7E08", results[0].GameID)
	assert.Equal(t, "killer7", results[0].Title)
	assert.Equal(t, "GameCube", results[0].Platform)
	assert.Equal(t, "gameid", results[0].Match)
	assert.Empty(t, results[0].Error)
}

func TestScanCommand(t *testing.T) {
	env := newCLIEnv(t)

	games := filepath.Join(env.dir, "games")
	require.NoError(t, os.MkdirAll(games, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(games, "junk.iso"), []byte("junk"), 0o600))

	out, err := env.run(t, "scan", games)
	require.NoError(t, err)
	assert.Contains(t, out, "junk.iso")
	assert.Contains(t, out, "unknown")
}
