package utils

import (
	"crypto/x509/pkix"
	"strings"

	ldap "github.com/go-ldap/ldap/v3"
	"github.com/pkg/errors"
)

// ParseDN converts a distinguished name string into a pkix.Name. Both the
// OpenSSL slash form ("/CN=self/O=acme") and the RFC 2253 comma form
// ("CN=self,O=acme") are accepted.
func ParseDN(subject string) (pkix.Name, error) {
	name := pkix.Name{}

	if strings.TrimSpace(subject) == "" {
		return name, errors.New("empty subject name")
	}

	if strings.HasPrefix(subject, "/") {
		return parseSlashDN(subject)
	}

	dn, err := ldap.ParseDN(subject)
	if err != nil {
		return name, errors.Wrapf(err, "failed parsing subject name [%s]", subject)
	}

	for _, rdn := range dn.RDNs {
		for _, attr := range rdn.Attributes {
			if err := applyAttribute(&name, attr.Type, attr.Value); err != nil {
				return pkix.Name{}, err
			}
		}
	}
	return name, nil
}

func parseSlashDN(subject string) (pkix.Name, error) {
	name := pkix.Name{}

	applied := 0
	for _, part := range strings.Split(subject, "/") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return pkix.Name{}, errors.Errorf("malformed subject component [%s]", part)
		}
		if err := applyAttribute(&name, kv[0], kv[1]); err != nil {
			return pkix.Name{}, err
		}
		applied++
	}
	if applied == 0 {
		return pkix.Name{}, errors.Errorf("subject name carries no attributes [%s]", subject)
	}
	return name, nil
}

func applyAttribute(name *pkix.Name, attrType, value string) error {
	switch strings.ToUpper(strings.TrimSpace(attrType)) {
	case "CN":
		name.CommonName = value
	case "O":
		name.Organization = append(name.Organization, value)
	case "OU":
		name.OrganizationalUnit = append(name.OrganizationalUnit, value)
	case "C":
		name.Country = append(name.Country, value)
	case "L":
		name.Locality = append(name.Locality, value)
	case "ST", "S":
		name.Province = append(name.Province, value)
	case "STREET":
		name.StreetAddress = append(name.StreetAddress, value)
	case "POSTALCODE":
		name.PostalCode = append(name.PostalCode, value)
	case "SERIALNUMBER":
		name.SerialNumber = value
	default:
		return errors.Errorf("subject attribute not recognized [%s]", attrType)
	}
	return nil
}
