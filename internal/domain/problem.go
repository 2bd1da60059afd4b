package domain

import "fmt"

// ProblemDomain is the axis an additional-information code belongs to
type ProblemDomain uint8

const (
	ProblemNone ProblemDomain = iota
	ProblemME
	ProblemNetwork
	ProblemSS
	ProblemUSSD
	ProblemCallControl
	ProblemBrowser
	ProblemBIP
)

func (d ProblemDomain) String() string {
	switch d {
	case ProblemME:
		return "me"
	case ProblemNetwork:
		return "network"
	case ProblemSS:
		return "ss"
	case ProblemUSSD:
		return "ussd"
	case ProblemCallControl:
		return "call_control"
	case ProblemBrowser:
		return "browser"
	case ProblemBIP:
		return "bip"
	default:
		return "none"
	}
}

// Problem is the additional information that qualifies a failing general result.
// Each implementation is a closed set of codes for one ProblemDomain.
type Problem interface {
	Domain() ProblemDomain
	Code() uint8
}

// NoSpecificCause returns the "no specific cause" code of a problem domain
func NoSpecificCause(d ProblemDomain) Problem {
	switch d {
	case ProblemME:
		return MENoSpecificCause
	case ProblemNetwork:
		return NetworkNoSpecificCause
	case ProblemSS:
		return SSNoSpecificCause
	case ProblemUSSD:
		return USSDNoSpecificCause
	case ProblemCallControl:
		return CallControlNoSpecificCause
	case ProblemBrowser:
		return BrowserNoSpecificCause
	case ProblemBIP:
		return BIPNoSpecificCause
	default:
		return nil
	}
}

// MEProblem qualifies ME currently unable to process command
type MEProblem uint8

const (
	MENoSpecificCause       MEProblem = 0x00
	MEScreenBusy            MEProblem = 0x01
	MEBusyOnCall            MEProblem = 0x02
	MEBusyOnSS              MEProblem = 0x03
	MENoService             MEProblem = 0x04
	MEAccessControlClassBar MEProblem = 0x05
	MERadioResourceNotGrant MEProblem = 0x06
	MENotInSpeechCall       MEProblem = 0x07
	MEBusyOnUSSD            MEProblem = 0x08
	MEBusyOnDTMF            MEProblem = 0x09
	MENoNAAActive           MEProblem = 0x0A
)

func (MEProblem) Domain() ProblemDomain { return ProblemME }
func (p MEProblem) Code() uint8         { return uint8(p) }

// NetworkProblem carries a network cause value. Causes are sent with bit 8 set.
type NetworkProblem uint8

const NetworkNoSpecificCause NetworkProblem = 0x00

func (NetworkProblem) Domain() ProblemDomain { return ProblemNetwork }
func (p NetworkProblem) Code() uint8 {
	if p == NetworkNoSpecificCause {
		return 0x00
	}
	return uint8(p) | 0x80
}

// SSProblem carries the error value of an SS Return Error
type SSProblem uint8

const SSNoSpecificCause SSProblem = 0x00

func (SSProblem) Domain() ProblemDomain { return ProblemSS }
func (p SSProblem) Code() uint8         { return uint8(p) }

// USSDProblem carries the error value of a USSD Return Error
type USSDProblem uint8

const USSDNoSpecificCause USSDProblem = 0x00

func (USSDProblem) Domain() ProblemDomain { return ProblemUSSD }
func (p USSDProblem) Code() uint8         { return uint8(p) }

// CallControlProblem qualifies a permanent call control interaction problem
type CallControlProblem uint8

const (
	CallControlNoSpecificCause  CallControlProblem = 0x00
	CallControlActionNotAllowed CallControlProblem = 0x01
	CallControlRequestChanged   CallControlProblem = 0x02
)

func (CallControlProblem) Domain() ProblemDomain { return ProblemCallControl }
func (p CallControlProblem) Code() uint8         { return uint8(p) }

// BrowserProblem qualifies a launch browser generic error
type BrowserProblem uint8

const (
	BrowserNoSpecificCause        BrowserProblem = 0x00
	BrowserBearerUnavailable      BrowserProblem = 0x01
	BrowserUnavailable            BrowserProblem = 0x02
	BrowserProvisioningUnreadable BrowserProblem = 0x03
	BrowserDefaultURLUnavailable  BrowserProblem = 0x04
)

func (BrowserProblem) Domain() ProblemDomain { return ProblemBrowser }
func (p BrowserProblem) Code() uint8         { return uint8(p) }

// BIPProblem qualifies a bearer independent protocol error
type BIPProblem uint8

const (
	BIPNoSpecificCause          BIPProblem = 0x00
	BIPNoChannelAvailable       BIPProblem = 0x01
	BIPChannelClosed            BIPProblem = 0x02
	BIPChannelIDInvalid         BIPProblem = 0x03
	BIPBufferSizeUnavailable    BIPProblem = 0x04
	BIPSecurityError            BIPProblem = 0x05
	BIPTransportUnavailable     BIPProblem = 0x06
	BIPRemoteUnreachable        BIPProblem = 0x07
	BIPServiceError             BIPProblem = 0x08
	BIPServiceIdentifierUnknown BIPProblem = 0x09
	BIPPortUnavailable          BIPProblem = 0x10
)

func (BIPProblem) Domain() ProblemDomain { return ProblemBIP }
func (p BIPProblem) Code() uint8         { return uint8(p) }

// ProblemFromCode builds a typed problem for a domain from its raw code
func ProblemFromCode(d ProblemDomain, code uint8) (Problem, error) {
	switch d {
	case ProblemME:
		return MEProblem(code), nil
	case ProblemNetwork:
		return NetworkProblem(code &^ 0x80), nil
	case ProblemSS:
		return SSProblem(code), nil
	case ProblemUSSD:
		return USSDProblem(code), nil
	case ProblemCallControl:
		return CallControlProblem(code), nil
	case ProblemBrowser:
		return BrowserProblem(code), nil
	case ProblemBIP:
		return BIPProblem(code), nil
	default:
		return nil, fmt.Errorf("%w: no problem codes for domain %s", ErrProblemMismatch, d)
	}
}
