// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile defines the report grammar profiles that drive document
// assembly: which section headings are expected, their presentation order,
// and which template styles they map to. The built-in default matches the
// Copilot report layout the tool was written for; a YAML profile file can
// override any subset of it.
package profile

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docforge/pkg/types"
)

// Default returns the built-in report profile: Portuguese Copilot report
// headings in their fixed presentation order, with the template style names
// the companion Word template defines.
func Default() types.Profile {
	return types.Profile{
		Name: "copilot-ptbr",
		SectionKeys: []string{
			"Título", "Descrição", "Entradas", "Saídas",
			"Fluxo de Execução", "Dependências", "Erros Comuns", "Exemplo de Uso",
		},
		ListKeys:     []string{"Entradas", "Saídas", "Dependências", "Erros Comuns"},
		TitleKey:     "Título",
		ExampleKey:   "Exemplo de Uso",
		AnnexHeading: "Código-Fonte (Anexo)",
		Styles: types.StyleSet{
			Title:  "DocTitle",
			Normal: "NormalText",
			Code:   "CodeBlock",
			List:   "List Paragraph",
		},
	}
}

// Load reads a YAML profile file and merges it over the default profile:
// fields left unset keep their default values, so a profile file only needs
// to name what it changes. An explicitly empty list_keys disables bullet
// rendering entirely.
func Load(path string) (types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	var loaded types.Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return types.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}

	return merge(Default(), loaded), nil
}

// merge overlays loaded onto base. Nil slices and empty strings in loaded
// mean "keep the default"; non-nil empty slices are explicit overrides.
func merge(base, loaded types.Profile) types.Profile {
	out := base
	if loaded.Name != "" {
		out.Name = loaded.Name
	}
	if loaded.SectionKeys != nil {
		out.SectionKeys = loaded.SectionKeys
	}
	if loaded.ListKeys != nil {
		out.ListKeys = loaded.ListKeys
	}
	if loaded.TitleKey != "" {
		out.TitleKey = loaded.TitleKey
	}
	if loaded.ExampleKey != "" {
		out.ExampleKey = loaded.ExampleKey
	}
	if loaded.AnnexHeading != "" {
		out.AnnexHeading = loaded.AnnexHeading
	}
	if loaded.Styles.Title != "" {
		out.Styles.Title = loaded.Styles.Title
	}
	if loaded.Styles.Normal != "" {
		out.Styles.Normal = loaded.Styles.Normal
	}
	if loaded.Styles.Code != "" {
		out.Styles.Code = loaded.Styles.Code
	}
	if loaded.Styles.List != "" {
		out.Styles.List = loaded.Styles.List
	}
	return out
}
