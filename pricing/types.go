// Package pricing is the typed client for the remote pricing API that owns
// all tariff state. The dashboard never touches the pricing database
// directly; every durable read or write goes through this package.
package pricing

// Client is a billable customer as returned by GET /api/clientes.
type Client struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Item is a priced service item. Categoria is the raw category id carried on
// each item row; the API has no joined category name here.
type Item struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria int    `json:"categoria"`
}

// Unit is a pricing unit (per kilo, per pallet, ...).
type Unit struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Category is a first-class category row from GET /api/categorias.
type Category struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Tariff is a row of the general tariff table, already joined to display
// names by the server. Validity dates arrive as opaque strings.
type Tariff struct {
	ID             int     `json:"id"`
	Cliente        string  `json:"cliente"`
	Categoria      string  `json:"categoria"`
	Unidad         string  `json:"unidad"`
	Item           string  `json:"item"`
	Precio         float64 `json:"precio"`
	Minimo         float64 `json:"minimo"`
	Incremento     float64 `json:"incremento"`
	VigenciaInicio string  `json:"fecha_vigencia_inicio"`
	VigenciaFinal  string  `json:"fecha_vigencia_final"`
}

// RangeTariff is a row of the weight-range tariff table. Desde/Hasta bound
// the weight bracket the price applies to.
type RangeTariff struct {
	ID             int     `json:"id"`
	Cliente        string  `json:"cliente"`
	Categoria      string  `json:"categoria"`
	Unidad         string  `json:"unidad"`
	Item           string  `json:"item"`
	Precio         float64 `json:"precio"`
	Desde          float64 `json:"desde"`
	Hasta          float64 `json:"hasta"`
	Incremento     float64 `json:"incremento"`
	VigenciaInicio string  `json:"fecha_vigencia_inicio"`
	VigenciaFinal  string  `json:"fecha_vigencia_final"`
}

// TariffInput is the write payload for creating or updating a tariff.
// Desde/Hasta are only meaningful for the range table and ignored elsewhere.
type TariffInput struct {
	ClienteID      int     `json:"cliente_id"`
	UnidadID       int     `json:"unidad_id"`
	ItemID         int     `json:"item_id"`
	Precio         float64 `json:"precio"`
	Minimo         float64 `json:"minimo"`
	Desde          float64 `json:"desde"`
	Hasta          float64 `json:"hasta"`
	Incremento     float64 `json:"incremento"`
	VigenciaInicio string  `json:"fecha_vigencia_inicio"`
	VigenciaFinal  string  `json:"fecha_vigencia_final"`
}

// TariffFilter narrows tariff listings. Zero values mean "no constraint";
// identifiers are kept as strings because they travel as query parameters.
type TariffFilter struct {
	Cliente     string
	Item        string
	Unidad      string
	Categoria   string
	FechaInicio string
	FechaFin    string
}

// HistoryFilter narrows the tariff movement history listing.
type HistoryFilter struct {
	Cliente         string
	Categoria       string
	Unidad          string
	Item            string
	FechaInicio     string
	FechaFin        string
	FechaMovimiento string
}

// HistoricalTariff is a row of the tariff movement history.
type HistoricalTariff struct {
	Cliente    string  `json:"cliente"`
	Categoria  string  `json:"categoria"`
	Unidad     string  `json:"unidad"`
	Item       string  `json:"item"`
	Minimo     float64 `json:"minimo"`
	Incremento float64 `json:"incremento"`
	Precio     float64 `json:"precio"`
	FechaDesde string  `json:"fechadesde"`
	FechaHasta string  `json:"fechahasta"`
	Movimiento string  `json:"movimiento"`
}

// ClientTariff is a row of GET /api/tarifarioUnico (one client's full
// tariff sheet, used for report downloads).
type ClientTariff struct {
	Cliente        string  `json:"cliente"`
	Categoria      string  `json:"categoria"`
	Unidad         string  `json:"unidad"`
	Precio         float64 `json:"precio"`
	Minimo         float64 `json:"minimo"`
	Incremento     float64 `json:"incremento"`
	VigenciaInicio string  `json:"fecha_vigencia_inicio"`
	VigenciaFinal  string  `json:"fecha_vigencia_final"`
}

// PrepValue is a per-kilo preparation value row from the reports module.
type PrepValue struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Cliente     int     `json:"cliente"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFinal  string  `json:"fecha_final"`
	ValorKilo   float64 `json:"valor_kilo_prep"`
}

// PrepValueInput is the write payload for a new per-kilo prep value.
type PrepValueInput struct {
	ClienteID   int     `json:"cliente_id"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFinal  string  `json:"fecha_final"`
	Valor       float64 `json:"valor"`
}

// BulkUpdateRequest is the payload of the bulk percentage update operation.
// Field names are fixed by the endpoint contract. Empty dates are sent as
// explicit empty strings, never omitted, so none of the fields carry
// omitempty.
type BulkUpdateRequest struct {
	Criterio       string  `json:"criterio"`
	SeleccionID    string  `json:"seleccionId"`
	IncluirCliente bool    `json:"incluirCliente"`
	ClienteID      string  `json:"clienteId"`
	FechaInicio    string  `json:"fechaInicio"`
	FechaFin       string  `json:"fechaFin"`
	Porcentaje     float64 `json:"porcentaje"`
	Usuario        string  `json:"usuario"`
}
