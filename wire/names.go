package wire

// Default namespaces of O-MI envelopes and of the Objects trees they carry.
const (
	OMINamespace = "omi.xsd"
	ODFNamespace = "odf.xsd"
)

// Namespaces selects the namespace URIs used for envelope and tree
// elements.
type Namespaces struct {
	OMI string
	ODF string
}

func DefaultNamespaces() Namespaces {
	return Namespaces{OMI: OMINamespace, ODF: ODFNamespace}
}

// Envelope and payload elements, in the O-MI namespace.
const (
	ElemEnvelope  = "omiEnvelope"
	ElemRead      = "read"
	ElemWrite     = "write"
	ElemCancel    = "cancel"
	ElemResponse  = "response"
	ElemResult    = "result"
	ElemReturn    = "return"
	ElemRequestID = "requestID"
	ElemMsg       = "msg"
	ElemNodeList  = "nodeList"
	ElemNode      = "node"
)

// Objects tree elements, in the ODF namespace.
const (
	ElemObjects     = "Objects"
	ElemObject      = "Object"
	ElemID          = "id"
	ElemDescription = "description"
	ElemInfoItem    = "InfoItem"
	ElemMetaData    = "MetaData"
	ElemValue       = "value"
)

const (
	AttrVersion     = "version"
	AttrTTL         = "ttl"
	AttrCallback    = "callback"
	AttrMsgFormat   = "msgformat"
	AttrTargetType  = "targetType"
	AttrInterval    = "interval"
	AttrBegin       = "begin"
	AttrEnd         = "end"
	AttrOldest      = "oldest"
	AttrNewest      = "newest"
	AttrReturnCode  = "returnCode"
	AttrDescription = "description"
	AttrName        = "name"
	AttrType        = "type"
	AttrDateTime    = "dateTime"
	AttrUnixTime    = "unixTime"
)

// MsgFormatODF is the only message format whose content is decoded.
const MsgFormatODF = "odf"

// Infinity is the lexical form of the unbounded time-to-live.
const Infinity = "INF"
