package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/toll-backoffice/internal/application"
)

type RenderOptions struct {
	Now time.Time
	// MaxTransits caps the history section; zero means everything.
	MaxTransits int
}

func renderView(d application.Dashboard, opts RenderOptions, s styles) string {
	owner := d.Owner

	lines := []string{
		s.title.Render("Tablero del propietario"),
		s.owner.Render(fmt.Sprintf("%s (%s)", owner.Name, owner.ID)),
		s.state.Render("estado: " + owner.State().DisplayName()),
		balanceLine(d, s),
	}

	lines = append(lines, s.section.Render(renderVehicles(d, s)))
	lines = append(lines, s.section.Render(renderAssignments(d, s)))
	lines = append(lines, s.section.Render(renderTransits(d, opts, s)))
	lines = append(lines, s.section.Render(renderNotifications(d, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func balanceLine(d application.Dashboard, s styles) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("saldo: "),
		s.amount.Render("$ "+d.Owner.Balance().StringFixed(2)),
	)

	if d.Owner.BelowAlertThreshold() {
		line += " " + s.warning.Render("[saldo bajo]")
	}

	return line
}

func renderVehicles(d application.Dashboard, s styles) string {
	vehicles := d.Owner.Vehicles()

	parts := []string{s.header.Render(fmt.Sprintf("vehículos: %d", len(vehicles)))}
	if len(vehicles) == 0 {
		parts = append(parts, s.empty.Render("Sin vehículos registrados."))
	}
	for _, v := range vehicles {
		parts = append(parts, s.detail.Render(fmt.Sprintf("%s  %s %s (%s)", v.Plate, v.Model, v.Color, v.Category.Name)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderAssignments(d application.Dashboard, s styles) string {
	assignments := d.Owner.Assignments()

	parts := []string{s.header.Render(fmt.Sprintf("bonificaciones: %d", len(assignments)))}
	if len(assignments) == 0 {
		parts = append(parts, s.empty.Render("Sin bonificaciones asignadas."))
	}
	for _, a := range assignments {
		parts = append(parts, s.detail.Render(fmt.Sprintf("%s en %s", a.Label(), a.Station.Name)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTransits(d application.Dashboard, opts RenderOptions, s styles) string {
	transits := d.Transits
	if opts.MaxTransits > 0 && len(transits) > opts.MaxTransits {
		transits = transits[:opts.MaxTransits]
	}

	parts := []string{s.header.Render(fmt.Sprintf("tránsitos: %d", len(d.Transits)))}
	if len(transits) == 0 {
		parts = append(parts, s.empty.Render("Sin tránsitos registrados."))
	}
	for _, t := range transits {
		parts = append(parts, s.detail.Render(fmt.Sprintf(
			"%s  %s  %s  $ %s  %s",
			t.At.Format("02/01/2006 15:04:05"),
			t.Station.Name,
			t.Vehicle.Plate,
			t.AmountPaid.StringFixed(2),
			t.DiscountLabel(),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderNotifications(d application.Dashboard, s styles) string {
	parts := []string{s.header.Render(fmt.Sprintf("notificaciones: %d", len(d.Notifications)))}
	if len(d.Notifications) == 0 {
		parts = append(parts, s.empty.Render("Sin notificaciones."))
	}
	for _, n := range d.Notifications {
		parts = append(parts, s.detail.Render(fmt.Sprintf("%s  %s", n.At.Format("02/01/2006 15:04:05"), n.Message)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
