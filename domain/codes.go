package domain

// Code types di tabel code_entries.
const (
	CodeTypeOrderStatus = "ORDER_STATUS"
	CodeTypeOrderType   = "ORDER_TYPE"
	CodeTypeTableStatus = "TABLE_STATUS"
	CodeTypeUserRole    = "USER_ROLE"
)

// ORDER_STATUS codes.
const (
	StatusOpen           = "OPEN"
	StatusPaid           = "PAID"
	StatusPreparing      = "PREPARING"
	StatusReady          = "READY"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusServed         = "SERVED"
	StatusCompleted      = "COMPLETED"
	StatusCancelled      = "CANCELLED"
)

// ORDER_TYPE codes.
const (
	TypeDineIn   = "DINE_IN"
	TypeTakeaway = "TAKEAWAY"
	TypeDelivery = "DELIVERY"
)

// TABLE_STATUS codes.
const (
	TableFree     = "FREE"
	TableOccupied = "OCCUPIED"
	TableReserved = "RESERVED"
)

// USER_ROLE codes.
const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
	RoleKitchen = "KITCHEN"
	RoleDriver  = "DRIVER"
)
