package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso retornan estos centinelas; el handler HTTP los traduce a
// códigos de estado. No hay canal global de notificaciones: el error es el valor.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Caja: precondiciones de la hoja de cobro.
	ErrEmptyInvoice      = errors.New("la factura no tiene ítems con valor")
	ErrMissingDates      = errors.New("fecha de emisión y vencimiento son obligatorias")
	ErrMissingPayment    = errors.New("medio de pago y fecha de pago son obligatorios")
	ErrUnknownPayMethod  = errors.New("medio de pago no configurado")
	ErrInvoiceFinalized  = errors.New("la factura ya fue emitida y sus ítems son inmutables")
	ErrInvoiceIsDraft    = errors.New("la factura aún es borrador")
)
