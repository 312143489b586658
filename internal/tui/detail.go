package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/food-catalog/models"
)

func renderDetail(item models.ClassifiedItem, privileged bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name        │ %s\n", item.Name)
	fmt.Fprintf(&b, "Kind        │ %s\n", item.Kind)
	fmt.Fprintf(&b, "Category    │ %s\n", item.Category)
	fmt.Fprintf(&b, "Calories    │ %s\n", calorieLabel(item.Calorie))
	fmt.Fprintf(&b, "Description │ %s\n", valueOrDash(item.Description))
	fmt.Fprintf(&b, "Image       │ %s\n", valueOrDash(item.Image))
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created     │ %s\n", item.CreatedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintf(&b, "ID          │ %s", item.ID)

	hotKeys := "esc: back │ c: copy id"
	if privileged {
		hotKeys += " │ d: delete"
	}
	return renderPage(strings.ToUpper(item.Name), b.String(), hotKeys)
}
