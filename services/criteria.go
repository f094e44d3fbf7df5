package services

import "strconv"

// Criterion is the dimension a bulk update selects tariffs by. The values
// are the wire strings the pricing API expects.
type Criterion string

const (
	CriterionCliente   Criterion = "cliente"
	CriterionItem      Criterion = "item"
	CriterionUnidad    Criterion = "unidad"
	CriterionCategoria Criterion = "categoria"
)

// DefaultCriterion is what a fresh selection starts on.
const DefaultCriterion = CriterionCliente

func (c Criterion) Valid() bool {
	switch c {
	case CriterionCliente, CriterionItem, CriterionUnidad, CriterionCategoria:
		return true
	}
	return false
}

// Option is one candidate target for the active criterion.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CriterionOptions projects the reference list matching the criterion into
// selectable options. Category options mirror the item list one-to-one,
// each labeled with that item's raw category id and not deduplicated. The
// option value is the category id itself, since that is what the pricing
// API matches a categoria submission against.
func CriterionOptions(ref ReferenceData, c Criterion) []Option {
	switch c {
	case CriterionCliente:
		opts := make([]Option, 0, len(ref.Clientes))
		for _, cl := range ref.Clientes {
			opts = append(opts, Option{ID: strconv.Itoa(cl.ID), Label: cl.Nombre})
		}
		return opts
	case CriterionItem:
		opts := make([]Option, 0, len(ref.Items))
		for _, it := range ref.Items {
			opts = append(opts, Option{ID: strconv.Itoa(it.ID), Label: it.Nombre})
		}
		return opts
	case CriterionUnidad:
		opts := make([]Option, 0, len(ref.Unidades))
		for _, u := range ref.Unidades {
			opts = append(opts, Option{ID: strconv.Itoa(u.ID), Label: u.Nombre})
		}
		return opts
	case CriterionCategoria:
		opts := make([]Option, 0, len(ref.Items))
		for _, it := range ref.Items {
			opts = append(opts, Option{
				ID:    strconv.Itoa(it.Categoria),
				Label: strconv.Itoa(it.Categoria),
			})
		}
		return opts
	}
	return nil
}

// Selection is the criteria form state. A target id is only meaningful
// relative to the criterion it was picked under.
type Selection struct {
	Criterion     Criterion
	TargetID      string
	IncludeClient bool
	ClientID      string
}

func NewSelection() Selection {
	return Selection{Criterion: DefaultCriterion}
}

// SetCriterion switches the active criterion. Changing it drops the target
// id, since an id picked under one criterion is a different entity under
// another.
func (s *Selection) SetCriterion(c Criterion) {
	if c == s.Criterion {
		return
	}
	s.Criterion = c
	s.TargetID = ""
}

// SetIncludeClient toggles the optional client scope. Turning it off keeps
// the previously chosen client id around (re-enabling restores it) but the
// id is ignored by validation while the flag is off.
func (s *Selection) SetIncludeClient(on bool) {
	s.IncludeClient = on
}
