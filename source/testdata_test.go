package source_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<datafile>
	<WiiTDB version="20240101000000" games="3"/>
	<game name="Super Smash Bros. Melee (name attr)">
		<id>GALE01</id>
		<type>GameCube</type>
		<region>NTSC-U</region>
		<languages>EN</languages>
		<locale lang="JA"><title>大乱闘スマッシュブラザーズDX</title></locale>
		<locale lang="EN"><title>Super Smash Bros. Melee</title><synopsis>Fight.</synopsis></locale>
		<rom version="1.00" name="Super Smash Bros. Melee (USA) (En,Ja) (v1.00).iso" size="1459978240" crc="AAAA0000" md5="m0" sha1="s0"/>
		<rom version="1.02" name="Super Smash Bros. Melee (USA) (En,Ja) (v1.02).iso" size="1459978240" crc="aaaa0002" md5="m2" sha1="s2"/>
	</game>
	<game name="Wii Sports">
		<id>RSPE01</id>
		<type/>
		<region>NTSC-U</region>
		<rom version="" name="Wii Sports (USA).iso" size="4699979776" crc="1" md5="2" sha1="3"/>
	</game>
	<game name="Homebrew">
		<id> </id>
		<type>Homebrew</type>
	</game>
</datafile>
`

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func writeZIP(t *testing.T, dir, name string, files map[string][]byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // test temp dir
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	w := zip.NewWriter(f)
	for entry, content := range files {
		fw, err := w.Create(entry)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}
