// Copyright (c) 2025 Niema Moshiri and The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-wiitdb.
//
// go-wiitdb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-wiitdb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-wiitdb.  If not, see <https://www.gnu.org/licenses/>.

package archive_test

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/go-wiitdb/archive"
)

func TestParsePath_ArchiveWithInternalPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	zipPath := createTestZIP(t, tmpDir, "games.zip", map[string][]byte{"GALE01.iso": []byte("test")})

	result, err := archive.ParsePath(zipPath + "/GALE01.iso")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected result, got nil")
	}
	if result.ArchivePath != zipPath {
		t.Errorf("ArchivePath = %q, want %q", result.ArchivePath, zipPath)
	}
	if result.InternalPath != "GALE01.iso" {
		t.Errorf("InternalPath = %q, want %q", result.InternalPath, "GALE01.iso")
	}
}

func TestParsePath_ArchiveOnly(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	zipPath := createTestZIP(t, tmpDir, "games.zip", map[string][]byte{"GALE01.iso": []byte("test")})

	result, err := archive.ParsePath(zipPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected result, got nil")
	}
	if result.InternalPath != "" {
		t.Errorf("InternalPath = %q, want empty", result.InternalPath)
	}
}

func TestParsePath_NonArchive(t *testing.T) {
	t.Parallel()

	result, err := archive.ParsePath(filepath.Join(t.TempDir(), "GALE01.iso"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil, got %+v", result)
	}
}

func TestParsePath_NonExistentArchive(t *testing.T) {
	t.Parallel()

	// Use string concatenation instead of filepath.Join to include path separator
	fakePath := t.TempDir() + "/nonexistent.zip/GALE01.iso"

	result, err := archive.ParsePath(fakePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil, got %+v", result)
	}
}

func TestIsArchivePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/games/gc.zip/GALE01.iso", true},
		{"/games/gc.7z/folder/GALE01.iso", true},
		{"/games/wii.rar/RSBE01.iso", true},
		{"/games/gc.zip", true},
		{"/games/GALE01.iso", false},
		{"/games/gc.tar/GALE01.iso", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := archive.IsArchivePath(tt.path); got != tt.want {
				t.Errorf("IsArchivePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPath_OpenEntry(t *testing.T) {
	t.Parallel()

	content := []byte("disc image bytes")
	zipPath := createTestZIP(t, t.TempDir(), "games.zip", map[string][]byte{
		"notes.txt":     []byte("notes"),
		"gc/GALE01.iso": content,
	})

	tests := []struct {
		name     string
		internal string
		wantName string
	}{
		{name: "explicit", internal: "gc/GALE01.iso", wantName: "gc/GALE01.iso"},
		{name: "auto-detect", internal: "", wantName: "gc/GALE01.iso"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &archive.Path{ArchivePath: zipPath, InternalPath: tt.internal}
			entry, err := p.OpenEntry()
			if err != nil {
				t.Fatalf("OpenEntry() error = %v", err)
			}
			defer func() { _ = entry.Close() }()

			if entry.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", entry.Name, tt.wantName)
			}
			if entry.Size != int64(len(content)) {
				t.Errorf("Size = %d, want %d", entry.Size, len(content))
			}
			data, err := io.ReadAll(entry)
			if err != nil {
				t.Fatalf("read entry: %v", err)
			}
			if !bytes.Equal(data, content) {
				t.Errorf("content = %q, want %q", data, content)
			}
		})
	}

	missing := &archive.Path{ArchivePath: zipPath, InternalPath: "nope.iso"}
	if _, err := missing.OpenEntry(); err == nil {
		t.Error("expected error for missing entry")
	}
}
