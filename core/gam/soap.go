package gam

import (
	"encoding/xml"
	"strings"
)

const (
	soapNS = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNS  = "http://www.w3.org/2001/XMLSchema-instance"
)

type envelope struct {
	XMLName xml.Name       `xml:"soapenv:Envelope"`
	SoapNS  string         `xml:"xmlns:soapenv,attr"`
	XsiNS   string         `xml:"xmlns:xsi,attr"`
	Header  envelopeHeader `xml:"soapenv:Header"`
	Body    envelopeBody   `xml:"soapenv:Body"`
}

type envelopeHeader struct {
	RequestHeader requestHeader
}

type requestHeader struct {
	XMLName         xml.Name
	NetworkCode     string `xml:"networkCode"`
	ApplicationName string `xml:"applicationName"`
}

type envelopeBody struct {
	Operation operation
}

// operation is one service method call, e.g. getOrdersByStatement(filterStatement).
type operation struct {
	namespace string
	name      string
	params    []param
}

type param struct {
	name  string
	value any
}

// MarshalXML writes <name xmlns="namespace"> followed by one element per parameter.
// Slice values repeat the parameter element once per item.
func (o operation) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Space: o.namespace, Local: o.name}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range o.params {
		if err := e.EncodeElement(p.value, xml.StartElement{Name: xml.Name{Local: p.name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func newEnvelope(namespace, networkCode, applicationName string, op operation) envelope {
	op.namespace = namespace
	return envelope{
		SoapNS: soapNS,
		XsiNS:  xsiNS,
		Header: envelopeHeader{RequestHeader: requestHeader{
			XMLName:         xml.Name{Space: namespace, Local: "RequestHeader"},
			NetworkCode:     networkCode,
			ApplicationName: applicationName,
		}},
		Body: envelopeBody{Operation: op},
	}
}

type responseEnvelope struct {
	Body struct {
		Fault   *soapFault `xml:"Fault"`
		Content []byte     `xml:",innerxml"`
	} `xml:"Body"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Errors []struct {
		ErrorString string `xml:"errorString"`
		FieldPath   string `xml:"fieldPath"`
		Trigger     string `xml:"trigger"`
	} `xml:"detail>ApiExceptionFault>errors"`
}

func (f *soapFault) message() string {
	if len(f.Errors) == 0 {
		return f.String
	}
	parts := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		msg := e.ErrorString
		if e.FieldPath != "" {
			msg += " @ " + e.FieldPath
		}
		if e.Trigger != "" {
			msg += " (" + e.Trigger + ")"
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
