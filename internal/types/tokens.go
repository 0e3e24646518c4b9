package types

import (
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
)

// RequestMethod is a SIP request method token, e.g. INVITE.
// Methods are case-sensitive (RFC 3261 Section 7.1).
type RequestMethod string

func (m RequestMethod) IsValid() bool { return grammar.IsToken(m) }

// Equal compares methods as they are written, "invite" is not "INVITE".
func (m RequestMethod) Equal(val any) bool {
	switch v := val.(type) {
	case RequestMethod:
		return m == v
	case *RequestMethod:
		return v != nil && m == *v
	default:
		return false
	}
}

// TransportProto is the transport token of a Via sent-protocol, e.g. UDP.
// Compared case-insensitively.
type TransportProto string

func (p TransportProto) IsValid() bool { return grammar.IsToken(p) }

func (p TransportProto) Equal(val any) bool {
	switch v := val.(type) {
	case TransportProto:
		return util.EqFold(p, v)
	case *TransportProto:
		return v != nil && util.EqFold(p, *v)
	default:
		return false
	}
}

// ProtoInfo is the protocol name and version pair of a Via sent-protocol, "SIP/2.0".
type ProtoInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (p ProtoInfo) String() string { return p.Name + "/" + p.Version }

func (p ProtoInfo) IsZero() bool { return p.Name == "" && p.Version == "" }

func (p ProtoInfo) IsValid() bool { return grammar.IsToken(p.Name) && grammar.IsToken(p.Version) }

// Equal compares both parts case-insensitively.
func (p ProtoInfo) Equal(val any) bool {
	switch v := val.(type) {
	case ProtoInfo:
		return util.EqFold(p.Name, v.Name) && util.EqFold(p.Version, v.Version)
	case *ProtoInfo:
		return v != nil && p.Equal(*v)
	default:
		return false
	}
}
