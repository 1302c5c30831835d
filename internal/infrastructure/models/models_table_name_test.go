package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestTableNames(t *testing.T) {
	want := map[string]string{
		"Category":   "categories",
		"User":       "users",
		"Merchant":   "merchants",
		"Service":    "services",
		"Order":      "orders",
		"OrderEvent": "order_events",
	}
	cache := &sync.Map{}
	for _, m := range All() {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("parse %T: %v", m, err)
		}
		if got := s.Table; got != want[s.Name] {
			t.Fatalf("unexpected %s table name: %s", s.Name, got)
		}
	}
}

func TestCategoryColumnName(t *testing.T) {
	s, err := schema.Parse(&Category{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f := s.LookUpField("category_name"); f == nil || f.Name != "Name" {
		t.Fatalf("expected category_name column for Category.Name")
	}
}
