package constants

// Roles
const (
	ROLE_ADMIN  = "admin"
	ROLE_CAJERO = "cajero"
	ROLE_MESERO = "mesero"
	ROLE_COCINA = "cocina"
)

// Order / order item status
const (
	ORDER_PENDING   = "pendiente"
	ORDER_COMPLETED = "completado"
	ORDER_CANCELLED = "cancelado"

	ITEM_ACTIVE    = "activo"
	ITEM_CANCELLED = "cancelado"
)

// Payment
const (
	PAYMENT_PENDING = "pendiente"
	PAYMENT_PAID    = "pagado"

	METHOD_CASH  = "efectivo"
	METHOD_CARD  = "tarjeta"
	METHOD_OTHER = "otro"
)

// Cash session
const (
	SESSION_OPEN   = "abierta"
	SESSION_CLOSED = "cerrada"

	CASH_IN  = "ingreso"
	CASH_OUT = "egreso"
)

// Table
const (
	TABLE_AVAILABLE = "disponible"
	TABLE_OCCUPIED  = "ocupada"
)

// Printer target areas for order items
const (
	AREA_COCINA = "cocina"
	AREA_BARRA  = "barra"
)

// Settings keys and defaults
const (
	SETTING_IGV_RATE       = "igv_rate"
	SETTING_ORDER_PREFIX   = "order_number_prefix"
	SETTING_PAYMENT_PREFIX = "payment_number_prefix"

	DEFAULT_IGV_RATE       = "18"
	DEFAULT_ORDER_PREFIX   = "ORD-"
	DEFAULT_PAYMENT_PREFIX = "PAY-"
)

// Shared messages
const (
	ERROR_INTERNAL_ERROR = "Error interno al procesar la solicitud"
	DATA_INPUT_INVALID   = "Datos de entrada inválidos"
)
