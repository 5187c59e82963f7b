package booking

import (
	"fmt"
	"strings"
)

// BookingType müşterinin hangi hizmet kategorilerini seçtiğini belirler
type BookingType string

const (
	TypeFull         BookingType = "full"
	TypePhotographer BookingType = "photographer"
	TypeVideographer BookingType = "videographer"
	TypeEquipment    BookingType = "equipment"
	TypeTransport    BookingType = "transport"
)

type Step string

const (
	StepLocationDate Step = "location_date"
	StepPhotographer Step = "photographer"
	StepVideographer Step = "videographer"
	StepEquipment    Step = "equipment"
	StepTransport    Step = "transport"
	StepReview       Step = "review"
)

// ItemKind sepetteki kalemin türü
type ItemKind string

const (
	KindPhotographer ItemKind = "photographer"
	KindVideographer ItemKind = "videographer"
	KindEquipment    ItemKind = "equipment"
	KindTransport    ItemKind = "transport"
)

var fullSequence = []Step{
	StepLocationDate,
	StepPhotographer,
	StepVideographer,
	StepEquipment,
	StepTransport,
	StepReview,
}

// Steps verilen rezervasyon tipi için sihirbaz adımlarını sırayla döndürür.
// Boş tip tam paket gibi davranır.
func Steps(t BookingType) []Step {
	switch t {
	case TypePhotographer:
		return []Step{StepLocationDate, StepPhotographer, StepReview}
	case TypeVideographer:
		return []Step{StepLocationDate, StepVideographer, StepReview}
	case TypeEquipment:
		return []Step{StepLocationDate, StepEquipment, StepReview}
	case TypeTransport:
		return []Step{StepLocationDate, StepTransport, StepReview}
	default:
		steps := make([]Step, len(fullSequence))
		copy(steps, fullSequence)
		return steps
	}
}

func ParseBookingType(s string) (BookingType, error) {
	t := BookingType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeFull, TypePhotographer, TypeVideographer, TypeEquipment, TypeTransport:
		return t, nil
	}
	return "", fmt.Errorf("unknown booking type %q", s)
}

func ParseItemKind(s string) (ItemKind, error) {
	k := ItemKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindPhotographer, KindVideographer, KindEquipment, KindTransport:
		return k, nil
	}
	return "", fmt.Errorf("unknown item kind %q", s)
}

// StepFor her kalem türünün seçildiği adım
func (k ItemKind) StepFor() Step {
	return Step(k)
}

// IsPerson fotoğrafçı ve videograf kalemleri kişi olduğu için adet her zaman 1'dir
func (k ItemKind) IsPerson() bool {
	return k == KindPhotographer || k == KindVideographer
}

func hasStep(steps []Step, s Step) bool {
	return indexOf(steps, s) >= 0
}

func indexOf(steps []Step, s Step) int {
	for i, st := range steps {
		if st == s {
			return i
		}
	}
	return -1
}
