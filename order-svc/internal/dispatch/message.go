// Package dispatch turns a finished cart into the text of a WhatsApp order.
package dispatch

import (
	"math"
	"strconv"
	"strings"

	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/domain"
)

const (
	currency        = "جنيه"
	paymentNotice   = "الدفع نقداً عند الاستلام"
	extrasSeparator = "، "
)

// Lookup resolves the branch and area names shown in the message.
type Lookup struct {
	Branches []domain.Branch
	Areas    []domain.DeliveryArea
}

func (l Lookup) branch(id int) (domain.Branch, bool) {
	for _, b := range l.Branches {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Branch{}, false
}

func (l Lookup) area(id int) (domain.DeliveryArea, bool) {
	for _, a := range l.Areas {
		if a.ID == id {
			return a, true
		}
	}
	return domain.DeliveryArea{}, false
}

// FormatMessage writes every line of c with its size, extras, quantity and
// line total, then the subtotal, the delivery fee when there is one, the
// grand total, the payment notice and the customer details.
func FormatMessage(restaurantName string, c *cart.Cart, lookup Lookup) string {
	var b strings.Builder

	b.WriteString("مرحباً، أريد طلب من " + restaurantName + ":\n\n")
	for i, line := range c.Lines {
		b.WriteString(strconv.Itoa(i+1) + ". " + line.Name)
		if line.SizeName != "" {
			b.WriteString(" (" + line.SizeName + ")")
		}
		b.WriteString(" x" + strconv.Itoa(line.Quantity) + " = " + Money(line.Total()) + "\n")
		if len(line.Extras) > 0 {
			names := make([]string, len(line.Extras))
			for j, e := range line.Extras {
				names[j] = e.Name
			}
			b.WriteString("   الإضافات: " + strings.Join(names, extrasSeparator) + "\n")
		}
	}

	subtotal := c.TotalPrice()
	delivery := c.DeliveryPrice(lookup.Areas)
	b.WriteString("\nالمجموع: " + Money(subtotal) + "\n")
	if delivery != 0 {
		b.WriteString("رسوم التوصيل: " + Money(delivery) + "\n")
	}
	b.WriteString("الإجمالي: " + Money(subtotal+delivery) + "\n")
	b.WriteString("\n" + paymentNotice + "\n\n")

	b.WriteString("الاسم: " + c.Customer.Name + "\n")
	b.WriteString("الهاتف: " + c.Customer.Phone + "\n")
	b.WriteString("العنوان: " + c.Customer.Address + "\n")
	if branch, ok := lookup.branch(c.BranchID); ok {
		b.WriteString("الفرع: " + branch.Name + "\n")
	}
	if area, ok := lookup.area(c.AreaID); ok {
		b.WriteString("منطقة التوصيل: " + area.Name + "\n")
	}
	if notes := strings.TrimSpace(c.Customer.Notes); notes != "" {
		b.WriteString("ملاحظات: " + notes + "\n")
	}

	b.WriteString("\nشكراً لكم.")
	return b.String()
}

// Money formats an amount rounded to piasters, without trailing zeros,
// followed by the currency.
func Money(amount float64) string {
	return strconv.FormatFloat(math.Round(amount*100)/100, 'f', -1, 64) + " " + currency
}

// TargetPhone picks the branch WhatsApp number, falling back to the
// restaurant's own.
func TargetPhone(restaurant domain.Restaurant, branch *domain.Branch) string {
	if branch != nil && branch.WhatsAppPhone != "" {
		return branch.WhatsAppPhone
	}
	return restaurant.WhatsAppPhone
}

// Items snapshots the cart lines for the order record.
func Items(c *cart.Cart) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		item := domain.OrderItem{
			ID:       line.ItemID,
			Name:     line.Name,
			Size:     line.SizeName,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
			Total:    line.Total(),
		}
		for _, e := range line.Extras {
			item.Extras = append(item.Extras, e.Name)
		}
		items = append(items, item)
	}
	return items
}
