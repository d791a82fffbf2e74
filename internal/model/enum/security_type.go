package enum

import "main/pkg/exception"

// SecurityType classifies a tradable instrument.
type SecurityType uint8

const (
	_security_type_beg SecurityType = iota
	SecurityTypeForex
	SecurityTypeEquity
	SecurityTypeFuture
	SecurityTypeOption
	SecurityTypeCFD
	SecurityTypeBond
	SecurityTypeCrypto
	_security_type_end
)

func (s SecurityType) IsAvailable() bool {
	return s > _security_type_beg && s < _security_type_end
}

// String returns the canonical wire name.
func (s SecurityType) String() string {
	switch s {
	case SecurityTypeForex:
		return "FOREX"
	case SecurityTypeEquity:
		return "EQUITY"
	case SecurityTypeFuture:
		return "FUTURE"
	case SecurityTypeOption:
		return "OPTION"
	case SecurityTypeCFD:
		return "CFD"
	case SecurityTypeBond:
		return "BOND"
	case SecurityTypeCrypto:
		return "CRYPTO"
	default:
		return ""
	}
}

// ParseSecurityType maps a canonical wire name back to its value.
func ParseSecurityType(name string) (SecurityType, error) {
	switch name {
	case "FOREX":
		return SecurityTypeForex, nil
	case "EQUITY":
		return SecurityTypeEquity, nil
	case "FUTURE":
		return SecurityTypeFuture, nil
	case "OPTION":
		return SecurityTypeOption, nil
	case "CFD":
		return SecurityTypeCFD, nil
	case "BOND":
		return SecurityTypeBond, nil
	case "CRYPTO":
		return SecurityTypeCrypto, nil
	default:
		return _security_type_beg, exception.ErrUnknownSecurityType
	}
}
