package i18n

import (
	"fmt"
	"testing"

	"github.com/user/homeportal/internal/model"
)

func TestTablesComplete(t *testing.T) {
	seen := make(map[string]Key)
	for _, k := range Keys() {
		name := keyNames[k]
		if name == "" {
			t.Errorf("key %d has no name", int(k))
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("keys %d and %d share name %q", int(prev), int(k), name)
		}
		seen[name] = k

		for _, loc := range Supported() {
			if tables[loc][k] == "" {
				t.Errorf("locale %s is missing %s", loc, name)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		loc      model.Locale
		key      Key
		expected string
	}{
		{model.LocaleZH, KeyStatusUp, "正常"},
		{model.LocaleEN, KeyStatusUp, "Up"},
		{model.Locale("fr"), KeyStatusDown, "Down"},
		{model.LocaleEN, Key(-1), "Key(-1)"},
		{model.LocaleEN, keyCount, fmt.Sprintf("Key(%d)", int(keyCount))},
	}

	for _, test := range tests {
		result := Resolve(test.loc, test.key)
		if result != test.expected {
			t.Errorf("Resolve(%s, %v) = %q, expected %q", test.loc, test.key, result, test.expected)
		}
	}
}

func TestLookupFallbackChain(t *testing.T) {
	var zh, en table
	zh[KeyStatusUp] = "正常"
	en[KeyStatusUp] = "Up"
	en[KeyStatusDown] = "Down"
	set := map[model.Locale]*table{model.LocaleZH: &zh, model.LocaleEN: &en}

	if got := lookup(set, model.LocaleZH, KeyStatusUp); got != "正常" {
		t.Errorf("exact locale: got %q", got)
	}
	if got := lookup(set, model.LocaleZH, KeyStatusDown); got != "Down" {
		t.Errorf("english fallback: got %q", got)
	}
	if got := lookup(set, model.LocaleZH, KeyStatusUnknown); got != "status_unknown" {
		t.Errorf("raw key fallback: got %q", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(model.LocaleEN, KeyTimeMinAgo, 5); got != "5 min ago" {
		t.Errorf("int substitution: got %q", got)
	}
	if got := Format(model.LocaleZH, KeyTimeOn, "2024/1/2 03:04:05"); got != "于 2024/1/2 03:04:05" {
		t.Errorf("string substitution: got %q", got)
	}
	if got := Format(model.LocaleEN, KeyTimeMinAgo, "x"); got != "%d min ago" {
		t.Errorf("mismatched argument should leave template: got %q", got)
	}
	if got := Format(model.LocaleEN, KeyStatusUp, 3); got != "Up" {
		t.Errorf("no placeholder: got %q", got)
	}
}

func TestStatusKey(t *testing.T) {
	tests := []struct {
		state    model.ServiceState
		expected Key
	}{
		{model.StateUp, KeyStatusUp},
		{model.StateDown, KeyStatusDown},
		{model.StateUnknown, KeyStatusUnknown},
		{model.ServiceState(""), KeyStatusUnknown},
	}
	for _, test := range tests {
		if got := StatusKey(test.state); got != test.expected {
			t.Errorf("StatusKey(%q) = %v, expected %v", test.state, got, test.expected)
		}
	}
}

func TestToggle(t *testing.T) {
	if Toggle(model.LocaleZH) != model.LocaleEN {
		t.Error("zh should toggle to en")
	}
	if Toggle(model.LocaleEN) != model.LocaleZH {
		t.Error("en should toggle to zh")
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Locale
		ok       bool
	}{
		{"zh", model.LocaleZH, true},
		{"zh-CN", model.LocaleZH, true},
		{"zh_CN.UTF-8", model.LocaleZH, true},
		{"en", model.LocaleEN, true},
		{"en_US.UTF-8", model.LocaleEN, true},
		{"", "", false},
		{"C", "", false},
		{"not a tag!", "", false},
	}
	for _, test := range tests {
		got, ok := ParseLocale(test.input)
		if ok != test.ok || got != test.expected {
			t.Errorf("ParseLocale(%q) = (%q, %v), expected (%q, %v)", test.input, got, ok, test.expected, test.ok)
		}
	}
}
