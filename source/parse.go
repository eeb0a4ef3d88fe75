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

package source

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ZaparooProject/go-wiitdb/catalog"
)

type xmlGame struct {
	Name    string      `xml:"name,attr"`
	ID      string      `xml:"id"`
	Type    string      `xml:"type"`
	Region  string      `xml:"region"`
	Locales []xmlLocale `xml:"locale"`
	ROMs    []xmlROM    `xml:"rom"`
}

type xmlLocale struct {
	Lang  string `xml:"lang,attr"`
	Title string `xml:"title"`
}

type xmlROM struct {
	Version string `xml:"version,attr"`
	Name    string `xml:"name,attr"`
	Size    string `xml:"size,attr"`
	CRC     string `xml:"crc,attr"`
	MD5     string `xml:"md5,attr"`
	SHA1    string `xml:"sha1,attr"`
}

// Parse streams <game> elements from a GameTDB XML document. Elements other
// than <game> are skipped wherever they appear.
func Parse(r io.Reader) ([]catalog.RawTitle, error) {
	dec := xml.NewDecoder(r)

	var titles []catalog.RawTitle
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read database xml")
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "game" {
			continue
		}

		var game xmlGame
		if err := dec.DecodeElement(&game, &start); err != nil {
			return nil, errors.Wrapf(err, "could not decode game element %d", len(titles)+1)
		}
		titles = append(titles, game.rawTitle())
	}

	return titles, nil
}

func (g xmlGame) rawTitle() catalog.RawTitle {
	title := catalog.RawTitle{
		GameID:   strings.TrimSpace(g.ID),
		Title:    g.title(),
		Region:   strings.TrimSpace(g.Region),
		Platform: strings.TrimSpace(g.Type),
	}
	if len(g.ROMs) > 0 {
		title.Discs = make([]catalog.RawDisc, 0, len(g.ROMs))
	}
	for _, rom := range g.ROMs {
		title.Discs = append(title.Discs, catalog.RawDisc{
			Version: rom.Version,
			Name:    rom.Name,
			Size:    strings.TrimSpace(rom.Size),
			CRC:     strings.TrimSpace(rom.CRC),
			MD5:     strings.TrimSpace(rom.MD5),
			SHA1:    strings.TrimSpace(rom.SHA1),
		})
	}
	return title
}

// title prefers the English locale, then the name attribute.
func (g xmlGame) title() string {
	for _, locale := range g.Locales {
		if strings.EqualFold(locale.Lang, "EN") {
			if t := strings.TrimSpace(locale.Title); t != "" {
				return t
			}
		}
	}
	return strings.TrimSpace(g.Name)
}
