// Package configs provides embedded configuration templates for strmatch.
//
// Templates are embedded at build time with //go:embed so they ship in
// every distribution, source builds included. 'strmatch config init'
// writes them out instead of dumping a bare marshal, keeping the comments
// that document each setting.
//
// Configuration hierarchy (see internal/config Load):
//  1. Hardcoded defaults
//  2. User config (~/.config/strmatch/config.yaml)
//  3. Project config (.strmatch.yaml)
//  4. Environment variables (STRMATCH_*)
//  5. Command-line flags
//
// To change a template, edit the .yaml file here and rebuild.
package configs

import _ "embed"

// UserConfigTemplate holds machine-wide defaults.
// Created by 'strmatch config init' at ~/.config/strmatch/config.yaml.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate holds per-project overrides.
// Created by 'strmatch config init --project' as .strmatch.yaml in the
// working directory.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
