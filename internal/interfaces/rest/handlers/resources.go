package handlers

import (
	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest"
)

// Per-entity resource assembly. Every representation carries self and
// collection links plus navigation links to related resources; action links
// depend on the entity's current status.

func paymentResource(p *domain.Payment) rest.Resource {
	res := rest.NewResource(p, "/api/v2/pagos/"+p.ID.String(), "/api/v2/pagos")
	if p.TransactionID != uuid.Nil {
		res.Links["transaccion"] = rest.Link{Href: "/api/v2/transacciones/" + p.TransactionID.String()}
	}
	if p.UserID != uuid.Nil {
		res.Links["usuario"] = rest.Link{Href: "/api/v2/usuarios/" + p.UserID.String()}
	}
	if p.Status == domain.StatusAprobado {
		res.Links["reembolsar"] = rest.Link{Href: "/api/v2/reembolsos/procesar"}
	}
	return res
}

func transactionResource(t *domain.Transaction) rest.Resource {
	res := rest.NewResource(t, "/api/v2/transacciones/"+t.ID.String(), "/api/v2/transacciones")
	res.Links["estado"] = rest.Link{Href: "/api/v2/transacciones/" + t.ID.String() + "/estado"}
	if t.PaymentID != nil {
		res.Links["pago"] = rest.Link{Href: "/api/v2/pagos/" + t.PaymentID.String()}
	}
	return res
}

func refundResource(r *domain.Refund) rest.Resource {
	res := rest.NewResource(r, "/api/v2/reembolsos/"+r.ID.String(), "/api/v2/reembolsos")
	if r.PaymentID != uuid.Nil {
		res.Links["pago"] = rest.Link{Href: "/api/v2/pagos/" + r.PaymentID.String()}
	}
	return res
}

func userResource(u *domain.User) rest.Resource {
	res := rest.NewResource(u, "/api/v2/usuarios/"+u.ID.String(), "/api/v2/usuarios")
	res.Links["pagos"] = rest.Link{Href: "/api/v2/pagos"}
	res.Links["notificaciones"] = rest.Link{Href: "/api/v2/notificaciones"}
	return res
}

func notificationResource(n *domain.Notification) rest.Resource {
	res := rest.NewResource(n, "/api/v2/notificaciones/"+n.ID.String(), "/api/v2/notificaciones")
	if n.RecipientUserID != uuid.Nil {
		res.Links["destinatario"] = rest.Link{Href: "/api/v2/usuarios/" + n.RecipientUserID.String()}
	}
	return res
}

// resources wraps each element of a listing in its HAL representation.
func resources[T any](items []T, assemble func(T) rest.Resource) []rest.Resource {
	out := make([]rest.Resource, 0, len(items))
	for _, item := range items {
		out = append(out, assemble(item))
	}
	return out
}
