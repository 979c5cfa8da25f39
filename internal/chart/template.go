package chart

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Template describes a chart of accounts independent of any company, as
// nested classes with their leaf accounts. Templates come from YAML files or
// from the built-in default.
type Template struct {
	Name    string          `yaml:"name"`
	Classes []TemplateClass `yaml:"classes"`
}

// TemplateClass is one class in a Template.
type TemplateClass struct {
	Code     string            `yaml:"code"`
	Name     string            `yaml:"name"`
	Children []TemplateClass   `yaml:"children,omitempty"`
	Accounts []TemplateAccount `yaml:"accounts,omitempty"`
}

// TemplateAccount is one leaf account in a Template.
type TemplateAccount struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// LoadTemplate parses a chart template from YAML.
func LoadTemplate(r io.Reader) (*Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading chart template: %w", err)
	}
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("parsing chart template: %w", err)
	}
	if len(tpl.Classes) == 0 {
		return nil, fmt.Errorf("chart template %q has no classes", tpl.Name)
	}
	return &tpl, nil
}

// LoadTemplateFile parses a chart template from a YAML file on disk.
func LoadTemplateFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart template: %w", err)
	}
	defer f.Close()
	return LoadTemplate(f)
}

// FlatClass is a template class flattened for insertion; parents are
// referenced by code because IDs are assigned by the store.
type FlatClass struct {
	Code       string
	Name       string
	ParentCode string // "" = root
	Position   int
}

// FlatAccount is a template account flattened for insertion.
type FlatAccount struct {
	Code      string
	Name      string
	ClassCode string
	Position  int
}

// Flatten walks the template depth-first and returns classes and accounts in
// chart order; Position records that order within each parent.
func (t *Template) Flatten() ([]FlatClass, []FlatAccount) {
	var classes []FlatClass
	var accounts []FlatAccount

	var walk func(tc TemplateClass, parentCode string, pos int)
	walk = func(tc TemplateClass, parentCode string, pos int) {
		classes = append(classes, FlatClass{
			Code:       tc.Code,
			Name:       tc.Name,
			ParentCode: parentCode,
			Position:   pos,
		})
		for i, a := range tc.Accounts {
			accounts = append(accounts, FlatAccount{
				Code:      a.Code,
				Name:      a.Name,
				ClassCode: tc.Code,
				Position:  i,
			})
		}
		for i, child := range tc.Children {
			walk(child, tc.Code, i)
		}
	}
	for i, tc := range t.Classes {
		walk(tc, "", i)
	}
	return classes, accounts
}

// Store persists a flattened chart for a company.
type Store interface {
	SaveChart(ctx context.Context, companyID uint, classes []FlatClass, accounts []FlatAccount) error
}

// Installer provisions a template into a company's chart of accounts.
type Installer struct {
	tpl   *Template
	store Store
}

// NewInstaller creates an Installer for a template.
func NewInstaller(tpl *Template, store Store) *Installer {
	return &Installer{tpl: tpl, store: store}
}

// Install writes the template's classes and accounts for a company.
func (i *Installer) Install(ctx context.Context, companyID uint) error {
	classes, accounts := i.tpl.Flatten()
	if err := i.store.SaveChart(ctx, companyID, classes, accounts); err != nil {
		return fmt.Errorf("saving chart for company %d: %w", companyID, err)
	}
	return nil
}
