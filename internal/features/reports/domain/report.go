package domain

import (
	"sort"
	"time"

	orderdomain "canteen-api/internal/features/orders/domain"
)

// topItemLimit caps how many best sellers a daily report names.
const topItemLimit = 5

// ItemSales is one menu item's sales total within a report.
type ItemSales struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Cents    int64  `json:"cents"`
}

// DailySalesReport summarizes one calendar day of orders. Cancelled orders
// are excluded.
type DailySalesReport struct {
	Date          string      `json:"date"`
	OrderCount    int         `json:"order_count"`
	GrossCents    int64       `json:"gross_cents"`
	DiscountCents int64       `json:"discount_cents"`
	NetCents      int64       `json:"net_cents"`
	TopItems      []ItemSales `json:"top_items"`
}

// BuildDailyReport aggregates the orders that fall on the given day. The day
// boundary follows the location of the date argument.
func BuildDailyReport(date time.Time, orders []orderdomain.Order) DailySalesReport {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	report := DailySalesReport{
		Date:     dayStart.Format("2006-01-02"),
		TopItems: []ItemSales{},
	}
	sales := make(map[string]*ItemSales)

	for _, order := range orders {
		if order.Status == orderdomain.StatusCancelled {
			continue
		}
		if order.CreatedAt.Before(dayStart) || !order.CreatedAt.Before(dayEnd) {
			continue
		}

		report.OrderCount++
		report.GrossCents += order.SubtotalCents
		report.DiscountCents += order.DiscountCents
		report.NetCents += order.TotalCents

		for _, item := range order.Items {
			entry, ok := sales[item.ItemID]
			if !ok {
				entry = &ItemSales{ItemID: item.ItemID, Name: item.Name}
				sales[item.ItemID] = entry
			}
			entry.Quantity += item.Quantity
			entry.Cents += item.UnitPriceCents * int64(item.Quantity)
		}
	}

	for _, entry := range sales {
		report.TopItems = append(report.TopItems, *entry)
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Quantity != report.TopItems[j].Quantity {
			return report.TopItems[i].Quantity > report.TopItems[j].Quantity
		}
		return report.TopItems[i].ItemID < report.TopItems[j].ItemID
	})
	if len(report.TopItems) > topItemLimit {
		report.TopItems = report.TopItems[:topItemLimit]
	}

	return report
}
