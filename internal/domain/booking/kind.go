package booking

type Kind string

const (
	KindHotel  Kind = "hotel"
	KindFlight Kind = "flight"
	KindCar    Kind = "car"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindHotel, KindFlight, KindCar:
		return true
	default:
		return false
	}
}

func (k Kind) ReferencePrefix() string {
	switch k {
	case KindHotel:
		return "HTL"
	case KindFlight:
		return "FLT"
	case KindCar:
		return "CAR"
	default:
		return DefaultReferencePrefix
	}
}

func Kinds() []Kind {
	return []Kind{KindHotel, KindFlight, KindCar}
}
