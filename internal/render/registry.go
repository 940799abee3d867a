package render

import (
	"strconv"

	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/util"
)

// WidgetSpec is the static description of one configured service.
type WidgetSpec struct {
	Name      string
	Category  string
	Type      model.ServiceType
	URL       string
	Host      string
	Port      int
	Important bool
	Icon      string
}

// SpecsFromConfig converts the configured service list.
func SpecsFromConfig(services []util.ServiceConfig) []WidgetSpec {
	specs := make([]WidgetSpec, 0, len(services))
	for _, s := range services {
		specs = append(specs, WidgetSpec{
			Name:      s.Name,
			Category:  s.Category,
			Type:      model.ParseServiceType(s.Type),
			URL:       s.URL,
			Host:      s.Host,
			Port:      s.Port,
			Important: s.Important,
			Icon:      s.Icon,
		})
	}
	return specs
}

type widget struct {
	spec       WidgetSpec
	typ        model.ServiceType
	state      model.ServiceState
	metric     string
	lastChange string
	patched    bool
}

// Registry holds one card and one matrix row per configured service, keyed
// by name. Patches for names that are not registered are ignored.
type Registry struct {
	order   []string
	widgets map[string]*widget
}

// NewRegistry builds the widgets in configuration order. Later duplicates
// of a name are dropped.
func NewRegistry(specs []WidgetSpec) *Registry {
	r := &Registry{widgets: make(map[string]*widget, len(specs))}
	for _, s := range specs {
		if _, dup := r.widgets[s.Name]; dup {
			util.Warn("Duplicate service %q in config, keeping the first", s.Name)
			continue
		}
		typ := s.Type
		if typ == "" {
			typ = model.TypeOther
		}
		r.widgets[s.Name] = &widget{
			spec:       s,
			typ:        typ,
			state:      model.StateUnknown,
			metric:     Placeholder,
			lastChange: Placeholder,
		}
		r.order = append(r.order, s.Name)
	}
	return r
}

// Len returns the number of widgets.
func (r *Registry) Len() int { return len(r.order) }

// Apply patches widgets from a status view and returns how many were
// updated. Degraded views leave every widget as it was.
func (r *Registry) Apply(v StatusView) int {
	if v.Degraded {
		return 0
	}
	n := 0
	for _, p := range v.Patches {
		w, ok := r.widgets[p.Name]
		if !ok {
			util.Debug("No widget for service %q", p.Name)
			continue
		}
		if w.spec.Type == "" && p.Type != "" {
			w.typ = p.Type
		}
		w.state = p.State
		w.metric = p.Metric
		w.lastChange = p.LastChange
		w.patched = true
		n++
	}
	return n
}

// Card is one LAN deck card.
type Card struct {
	Name       string
	Category   string
	Icon       string
	State      model.ServiceState
	Badge      string
	Metric     string
	Type       string
	Endpoint   string
	Host       string
	Importance string
	Important  bool
	Link       string
	Patched    bool
}

// Row is one line of the service matrix.
type Row struct {
	Name       string
	Category   string
	Type       string
	State      model.ServiceState
	Badge      string
	Metric     string
	LastChange string
}

// Cards returns the deck in configuration order.
func (r *Registry) Cards(loc model.Locale) []Card {
	cards := make([]Card, 0, len(r.order))
	for _, name := range r.order {
		w := r.widgets[name]
		s := w.spec

		importance := i18n.KeyImportanceNormal
		if s.Important {
			importance = i18n.KeyImportanceCore
		}
		link := i18n.KeyLinkNoUI
		if s.URL != "" {
			link = i18n.KeyLinkOpen
		}

		cards = append(cards, Card{
			Name:       s.Name,
			Category:   s.Category,
			Icon:       s.Icon,
			State:      w.state,
			Badge:      i18n.Resolve(loc, i18n.StatusKey(w.state)),
			Metric:     w.metric,
			Type:       i18n.Resolve(loc, i18n.KeyKVType) + ": " + string(w.typ),
			Endpoint:   i18n.Resolve(loc, i18n.KeyKVEndpoint) + ": " + orPlaceholder(s.URL),
			Host:       i18n.Resolve(loc, i18n.KeyKVHost) + ": " + hostPort(s.Host, s.Port),
			Importance: i18n.Resolve(loc, i18n.KeyKVImportance) + ": " + i18n.Resolve(loc, importance),
			Important:  s.Important,
			Link:       i18n.Resolve(loc, link),
			Patched:    w.patched,
		})
	}
	return cards
}

// Rows returns the matrix in configuration order.
func (r *Registry) Rows(loc model.Locale) []Row {
	rows := make([]Row, 0, len(r.order))
	for _, name := range r.order {
		w := r.widgets[name]
		rows = append(rows, Row{
			Name:       w.spec.Name,
			Category:   orPlaceholder(w.spec.Category),
			Type:       string(w.typ),
			State:      w.state,
			Badge:      i18n.Resolve(loc, i18n.StatusKey(w.state)),
			Metric:     w.metric,
			LastChange: w.lastChange,
		})
	}
	return rows
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func hostPort(host string, port int) string {
	if host == "" {
		return Placeholder
	}
	if port > 0 {
		return host + ":" + strconv.Itoa(port)
	}
	return host
}
