package notifications

import (
	"bytes"
	"html/template"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/contact"
)

const submissionConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Hola {{.Name}},</p>
  <p>Gracias por ponerte en contacto con nosotros. Hemos recibido correctamente tu solicitud para el servicio de <strong>{{.ServiceType}}</strong>.</p>
  <p>Nuestro equipo revisará tu información y nos pondremos en contacto contigo en un plazo máximo de 24 horas.</p>
  <ul>
    <li>Servicio solicitado: {{.ServiceType}}</li>
    {{if .EventDate}}<li>Fecha del evento: {{.EventDate}}</li>{{end}}
    <li>Email de contacto: {{.Email}}</li>
    {{if .Phone}}<li>Teléfono: {{.Phone}}</li>{{end}}
  </ul>
  <p><strong>Tu mensaje:</strong></p>
  <p><em>"{{.Message}}"</em></p>
  <p>Atentamente,<br/><strong>Equipo {{.Studio}}</strong></p>
  <p>Este es un correo automático, por favor no responder directamente a esta dirección.</p>
</body>
</html>`

const submissionAlertTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>Nueva solicitud de contacto</h3>
  <p><strong>Cliente:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Phone}}<p><strong>Teléfono:</strong> {{.Phone}}</p>{{end}}
  <p><strong>Servicio solicitado:</strong> {{.ServiceType}}</p>
  {{if .EventDate}}<p><strong>Fecha del evento:</strong> {{.EventDate}}</p>{{end}}
  {{if .HowFoundUs}}<p><strong>Fuente:</strong> {{.HowFoundUs}}</p>{{end}}
  <p><strong>Mensaje:</strong><br/>"{{.Message}}"</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Recibido:</strong> {{.ReceivedAt}}</p>
</body>
</html>`

var submissionConfirmationTmpl = template.Must(template.New("submission_confirmation").Parse(submissionConfirmationTemplate))
var submissionAlertTmpl = template.Must(template.New("submission_alert").Parse(submissionAlertTemplate))

type submissionEmailData struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	ServiceType string
	EventDate   string
	Message     string
	HowFoundUs  string
	ReceivedAt  string
	Studio      string
}

func submissionData(msg contact.Message, studio string) submissionEmailData {
	data := submissionEmailData{
		ID:          msg.ID,
		Name:        msg.Name,
		Email:       msg.Email,
		ServiceType: msg.ServiceType,
		Message:     msg.Message,
		ReceivedAt:  msg.CreatedAt.Format("02/01/2006 15:04"),
		Studio:      studio,
	}
	if msg.Phone != nil {
		data.Phone = *msg.Phone
	}
	if msg.HowFoundUs != nil {
		data.HowFoundUs = *msg.HowFoundUs
	}
	if msg.EventDate != nil {
		data.EventDate = formatEventDate(*msg.EventDate)
	}
	return data
}

// formatEventDate rewrites the form's ISO date into the display format the
// emails use. Unparsable input passes through verbatim.
func formatEventDate(raw string) string {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return parsed.Format("02/01/2006")
}

func buildSubmissionConfirmationHTML(msg contact.Message, studio string) (string, error) {
	var buf bytes.Buffer
	if err := submissionConfirmationTmpl.Execute(&buf, submissionData(msg, studio)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildSubmissionAlertHTML(msg contact.Message) (string, error) {
	var buf bytes.Buffer
	if err := submissionAlertTmpl.Execute(&buf, submissionData(msg, "")); err != nil {
		return "", err
	}
	return buf.String(), nil
}
