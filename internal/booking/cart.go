package booking

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrKindNotInFlow = errors.New("item kind is not part of the selected booking type")
	ErrInvalidItem   = errors.New("invalid cart item")
	ErrUnknownStep   = errors.New("step is not part of the selected booking type")
	ErrIncomplete    = errors.New("booking cart is incomplete")
)

type Item struct {
	Kind      ItemKind `json:"kind"`
	RefID     uint     `json:"ref_id"`
	Name      string   `json:"name"`
	DailyRate float64  `json:"daily_rate"`
	Quantity  int      `json:"quantity"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// Subtotal tek kalemin kiralama süresi boyunca tutarı, kuruşa yuvarlanır
func (i Item) Subtotal(rentalDays int) float64 {
	return roundCents(i.DailyRate * float64(i.Quantity) * float64(rentalDays))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cart rezervasyon sihirbazının tüm durumunu tutar. Her değişiklikten sonra
// Store üzerinden kaydedilir.
type Cart struct {
	Type         BookingType `json:"type"`
	LocationID   uint        `json:"location_id,omitempty"`
	LocationName string      `json:"location_name,omitempty"`
	Date         *time.Time  `json:"date,omitempty"`
	RentalDays   int         `json:"rental_days"`
	Items        []Item      `json:"items"`
	StepIndex    int         `json:"step_index"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func NewCart() *Cart {
	return &Cart{
		Type:       TypeFull,
		RentalDays: 1,
		Items:      []Item{},
	}
}

func (c *Cart) Steps() []Step {
	return Steps(c.Type)
}

// SetType tipi değiştirir, yeni akışta adımı olmayan kalemleri çıkarır
func (c *Cart) SetType(t BookingType) {
	c.Type = t
	steps := c.Steps()

	kept := c.Items[:0]
	for _, item := range c.Items {
		if hasStep(steps, item.Kind.StepFor()) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.clampStep()
	c.touch()
}

func (c *Cart) SetLocation(id uint, name string) {
	c.LocationID = id
	c.LocationName = name
	c.touch()
}

func (c *Cart) SetDate(date time.Time) {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	c.Date = &d
	c.touch()
}

// SetRentalDays pozitif olmayan değerleri yok sayar
func (c *Cart) SetRentalDays(days int) {
	if days <= 0 {
		return
	}
	c.RentalDays = days
	c.touch()
}

// AddItem kalemi sepete ekler. Kişiler tekilleştirilir ve adetleri 1'de kalır,
// ekipman ve ulaşımda mevcut adede eklenir.
func (c *Cart) AddItem(item Item) error {
	if item.RefID == 0 || item.DailyRate < 0 {
		return ErrInvalidItem
	}
	if !hasStep(c.Steps(), item.Kind.StepFor()) {
		return ErrKindNotInFlow
	}
	if item.Kind.IsPerson() {
		item.Quantity = 1
	}
	if item.Quantity <= 0 {
		return nil
	}

	if i := c.find(item.Kind, item.RefID); i >= 0 {
		if !item.Kind.IsPerson() {
			c.Items[i].Quantity += item.Quantity
		}
		c.Items[i].Name = item.Name
		c.Items[i].DailyRate = item.DailyRate
		c.Items[i].ImageURL = item.ImageURL
		c.touch()
		return nil
	}

	c.Items = append(c.Items, item)
	c.touch()
	return nil
}

// RemoveItem kalem sepette yoksa false döner
func (c *Cart) RemoveItem(kind ItemKind, refID uint) bool {
	i := c.find(kind, refID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.touch()
	return true
}

// UpdateQuantity pozitif olmayan adetleri yok sayar
func (c *Cart) UpdateQuantity(kind ItemKind, refID uint, quantity int) bool {
	i := c.find(kind, refID)
	if i < 0 {
		return false
	}
	if quantity <= 0 || kind.IsPerson() {
		return true
	}
	c.Items[i].Quantity = quantity
	c.touch()
	return true
}

func (c *Cart) ItemsOf(kind ItemKind) []Item {
	var items []Item
	for _, item := range c.Items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total = Σ günlük ücret × adet × kiralama günü. Kalem tutarları ayrı ayrı
// yuvarlanıp toplanır, böylece rezervasyon kalemlerinin toplamıyla aynı kalır.
func (c *Cart) Total() float64 {
	days := c.RentalDays
	if days <= 0 {
		days = 1
	}
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal(days)
	}
	return roundCents(total)
}

func (c *Cart) CurrentStep() Step {
	steps := c.Steps()
	c.clampStep()
	return steps[c.StepIndex]
}

// Next son adımda kalır
func (c *Cart) Next() Step {
	if c.StepIndex < len(c.Steps())-1 {
		c.StepIndex++
		c.touch()
	}
	return c.CurrentStep()
}

// Back ilk adımda kalır
func (c *Cart) Back() Step {
	if c.StepIndex > 0 {
		c.StepIndex--
		c.touch()
	}
	return c.CurrentStep()
}

func (c *Cart) GoTo(step Step) error {
	i := indexOf(c.Steps(), step)
	if i < 0 {
		return ErrUnknownStep
	}
	c.StepIndex = i
	c.touch()
	return nil
}

// Progress 1 tabanlı pozisyon ve toplam adım sayısı
func (c *Cart) Progress() (position int, total int) {
	c.clampStep()
	return c.StepIndex + 1, len(c.Steps())
}

// Validate checkout öncesi zorunlu alanları kontrol eder
func (c *Cart) Validate() error {
	switch {
	case c.LocationID == 0:
		return fmt.Errorf("%w: location is required", ErrIncomplete)
	case c.Date == nil:
		return fmt.Errorf("%w: date is required", ErrIncomplete)
	case c.RentalDays < 1:
		return fmt.Errorf("%w: rental days must be at least 1", ErrIncomplete)
	case len(c.Items) == 0:
		return fmt.Errorf("%w: cart is empty", ErrIncomplete)
	}
	return nil
}

func (c *Cart) Reset() {
	*c = *NewCart()
	c.touch()
}

func (c *Cart) find(kind ItemKind, refID uint) int {
	for i, item := range c.Items {
		if item.Kind == kind && item.RefID == refID {
			return i
		}
	}
	return -1
}

func (c *Cart) clampStep() {
	n := len(c.Steps())
	if c.StepIndex >= n {
		c.StepIndex = n - 1
	}
	if c.StepIndex < 0 {
		c.StepIndex = 0
	}
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
