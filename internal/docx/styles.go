// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "encoding/xml"

const stylesPath = "word/styles.xml"

// stylesXML mirrors the parts of word/styles.xml the writer cares about:
// each style's id and its display name. Namespace prefixes are ignored by
// encoding/xml, so w:style decodes as style.
type stylesXML struct {
	XMLName xml.Name `xml:"styles"`
	Styles  []struct {
		Type string `xml:"type,attr"`
		ID   string `xml:"styleId,attr"`
		Name struct {
			Val string `xml:"val,attr"`
		} `xml:"name"`
	} `xml:"style"`
}

// parseStyles builds the style lookup table from word/styles.xml. Both the
// style id and the display name map to the id, so "List Paragraph" resolves
// to ListParagraph the same way Word's own style picker does. A template
// with unparsable styles yields an empty table, which downgrades every
// lookup to the document default rather than failing the build.
func parseStyles(data []byte) map[string]string {
	table := map[string]string{}

	var parsed stylesXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return table
	}

	for _, s := range parsed.Styles {
		if s.ID == "" {
			continue
		}
		table[s.ID] = s.ID
		if s.Name.Val != "" {
			table[s.Name.Val] = s.ID
		}
	}
	return table
}
