package scalar

import (
	"math"
	"testing"
	"time"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DateTestSuite struct {
	suite.Suite
}

var moment = time.Date(2024, time.March, 9, 17, 4, 5, 123000000, time.UTC)

func (s *DateTestSuite) TestSerialize() {
	assert.Equal(s.T(), "2024-03-09T17:04:05.123Z", Date.Serialize(moment))
	assert.Equal(s.T(), "2024-03-09T17:04:05.123Z", Date.Serialize(&moment))
	assert.Equal(s.T(), "2024-03-09T17:04:05.123Z", Date.Serialize(moment.In(time.FixedZone("x", 3600))))
	assert.Equal(s.T(), "2024-03-09T17:04:05.123Z", Date.Serialize("2024-03-09T17:04:05.123Z"))
	assert.Nil(s.T(), Date.Serialize("yesterday"))
	assert.Nil(s.T(), Date.Serialize(42))

	var missing *time.Time
	assert.Nil(s.T(), Date.Serialize(missing))
}

func (s *DateTestSuite) TestParseValue() {
	assert.Equal(s.T(), moment, Date.ParseValue("2024-03-09T17:04:05.123Z"))
	assert.Equal(s.T(), moment, Date.ParseValue(float64(moment.UnixMilli())))
	assert.Equal(s.T(), moment, Date.ParseValue(moment.UnixMilli()))
	assert.Equal(s.T(), time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), Date.ParseValue("2024-03-09"))
	assert.Nil(s.T(), Date.ParseValue("not a date"))
	assert.Nil(s.T(), Date.ParseValue(math.NaN()))
	assert.Nil(s.T(), Date.ParseValue(true))
}

func (s *DateTestSuite) TestParseLiteral() {
	assert.Equal(s.T(), moment, Date.ParseLiteral(&ast.StringValue{Value: "2024-03-09T17:04:05.123Z"}))
	assert.Equal(s.T(), time.UnixMilli(0).UTC(), Date.ParseLiteral(&ast.IntValue{Value: "0"}))
	assert.Nil(s.T(), Date.ParseLiteral(&ast.IntValue{Value: "1e99"}))
	assert.Nil(s.T(), Date.ParseLiteral(&ast.BooleanValue{Value: true}))
}

func (s *DateTestSuite) TestFormatDate() {
	assert.Equal(s.T(), "1970-01-01T00:00:00.000Z", FormatDate(time.UnixMilli(0)))
}

func TestDateTestSuite(t *testing.T) {
	suite.Run(t, new(DateTestSuite))
}
