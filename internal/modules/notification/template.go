package notification

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"aerotours/internal/domain"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatLongDate renders "2025-03-10" as "10 de marzo de 2025". Only the
// YYYY-MM-DD prefix is parsed and a plain calendar date is built from it,
// so the rendered day never shifts with the server's timezone.
func FormatLongDate(s string) string {
	d, err := domain.ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d de %s de %d", d.Day, spanishMonths[int(d.Month)-1], d.Year)
}

// SlugLabel turns "playa-del-carmen" into "Playa Del Carmen".
func SlugLabel(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func serviceLabel(serviceType string) string {
	switch domain.ServiceType(serviceType) {
	case domain.ServiceCharter:
		return "Vuelo Charter"
	case domain.ServiceTour:
		return "Tour Aéreo"
	default:
		return "Mensaje de Contacto"
	}
}

// RenderLeadEmail builds the Spanish HTML notification summarizing the
// lead: contact block first, then trip details branching on service type.
func RenderLeadEmail(p LeadPayload) (subject, html string) {
	subject = fmt.Sprintf("Nueva solicitud: %s — %s", serviceLabel(p.ServiceType), p.Name)

	var rows strings.Builder
	addRow := func(label, value string) {
		if value == "" {
			return
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 8px 12px; font-weight: 600; color: #1C3D5A; white-space: nowrap;">%s</td>`+
				`<td style="padding: 8px 12px; color: #334155;">%s</td></tr>`,
			label, value))
	}

	addRow("Nombre", p.Name)
	addRow("Email", p.Email)
	addRow("Teléfono", p.Phone)
	addRow("Servicio", serviceLabel(p.ServiceType))

	switch domain.ServiceType(p.ServiceType) {
	case domain.ServiceCharter:
		departure := SlugLabel(p.DepartureLocation)
		if p.DepartureLocation == domain.OtherChoice {
			departure = p.DepartureLocationOther
		}
		destination := SlugLabel(p.Destination)
		if p.Destination == domain.OtherChoice {
			destination = p.DestinationOther
		}
		addRow("Salida desde", departure)
		addRow("Destino", destination)
		addRow("Fecha de vuelo", FormatLongDate(p.TravelDate))
		addRow("Hora de salida", p.DepartureTime)
		if p.ReturnDate != "" {
			addRow("Fecha de regreso", FormatLongDate(p.ReturnDate))
			addRow("Hora de regreso", p.ReturnTime)
		}
		addRow("Aeronave seleccionada", p.AircraftSelected)
	case domain.ServiceTour:
		addRow("Tour", SlugLabel(p.Tour))
		if p.NumberOfPassengers > 0 {
			addRow("Pasajeros", fmt.Sprintf("%d", p.NumberOfPassengers))
		}
		addRow("Fecha del tour", FormatLongDate(p.TravelDate))
		addRow("Hora de salida", p.DepartureTime)
	}

	addRow("Precio preseleccionado", p.PreSelectedPrice)
	addRow("Mensaje", p.Message)

	html = fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>%s</title></head>
<body style="margin: 0; padding: 24px; background-color: #F1F5F9; font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif;">
  <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" style="margin: 0 auto; background-color: #FFFFFF; border-radius: 12px; overflow: hidden;">
    <tr>
      <td style="padding: 24px 32px; background-color: #1C3D5A;">
        <h1 style="margin: 0; font-size: 20px; color: #FFFFFF;">Nueva solicitud de cotización</h1>
        <p style="margin: 4px 0 0; font-size: 14px; color: #B8C7D9;">%s</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 24px 32px;">
        <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="font-size: 14px;">
          %s
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 32px; background-color: #F8FAFC;">
        <p style="margin: 0; font-size: 12px; color: #94A3B8;">Mensaje automático del sitio — no responder a este correo.</p>
      </td>
    </tr>
  </table>
</body>
</html>`, subject, serviceLabel(p.ServiceType), rows.String())

	return subject, html
}
