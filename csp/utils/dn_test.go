package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDNSlashForm(t *testing.T) {
	name, err := ParseDN("/CN=self")
	require.NoError(t, err)
	assert.Equal(t, "self", name.CommonName)

	name, err = ParseDN("/C=NZ/ST=Wellington/L=Te Aro/O=acme/OU=dev/CN=node-1")
	require.NoError(t, err)
	assert.Equal(t, "node-1", name.CommonName)
	assert.Equal(t, []string{"acme"}, name.Organization)
	assert.Equal(t, []string{"dev"}, name.OrganizationalUnit)
	assert.Equal(t, []string{"NZ"}, name.Country)
	assert.Equal(t, []string{"Wellington"}, name.Province)
	assert.Equal(t, []string{"Te Aro"}, name.Locality)
}

func TestParseDNCommaForm(t *testing.T) {
	name, err := ParseDN("CN=node-1,O=acme,C=NZ")
	require.NoError(t, err)
	assert.Equal(t, "node-1", name.CommonName)
	assert.Equal(t, []string{"acme"}, name.Organization)
	assert.Equal(t, []string{"NZ"}, name.Country)
}

func TestParseDNRepeatedAttributes(t *testing.T) {
	name, err := ParseDN("/O=acme/O=emca/CN=node")
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "emca"}, name.Organization)
}

func TestParseDNErrors(t *testing.T) {
	_, err := ParseDN("")
	assert.Error(t, err)

	_, err = ParseDN("   ")
	assert.Error(t, err)

	_, err = ParseDN("/")
	assert.Error(t, err)

	_, err = ParseDN("/CNself")
	assert.Error(t, err)

	_, err = ParseDN("/UNKNOWN=x")
	assert.Error(t, err)

	_, err = ParseDN("not a dn at all")
	assert.Error(t, err)
}
