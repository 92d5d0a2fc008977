package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	var strValue string
	err := json.Unmarshal(b, &strValue)
	if err == nil {
		floatValue, _ := strconv.ParseFloat(strValue, 64)
		*p = Price(floatValue)
		return nil
	}

	var floatValue float64
	err = json.Unmarshal(b, &floatValue)

	if err == nil {
		*p = Price(floatValue)
		return nil
	}

	return errors.New(fmt.Sprintf("Price: unsupported data type given, %s", err.Error()))
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(p.Value(), 'f', -1, 64))
}

func (p Price) Value() float64 {
	return float64(p)
}

type Volume float64

func (v *Volume) UnmarshalJSON(b []byte) error {
	var strValue string
	err := json.Unmarshal(b, &strValue)
	if err == nil {
		floatValue, _ := strconv.ParseFloat(strValue, 64)
		*v = Volume(floatValue)
		return nil
	}

	var floatValue float64
	err = json.Unmarshal(b, &floatValue)

	if err == nil {
		*v = Volume(floatValue)
		return nil
	}

	return errors.New(fmt.Sprintf("Volume: unsupported data type given, %s", err.Error()))
}

func (v Volume) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(v.Value(), 'f', -1, 64))
}

func (v Volume) Value() float64 {
	return float64(v)
}

type TimestampSec int64

func (t *TimestampSec) UnmarshalJSON(b []byte) error {
	var strValue string
	err := json.Unmarshal(b, &strValue)
	if err == nil {
		intValue, _ := strconv.ParseInt(strValue, 10, 64)
		*t = TimestampSec(intValue)
		return nil
	}

	var intValue int64
	err = json.Unmarshal(b, &intValue)

	if err == nil {
		*t = TimestampSec(intValue)
		return nil
	}

	return errors.New(fmt.Sprintf("TimestampSec: unsupported data type given, %s", err.Error()))
}

func (t TimestampSec) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value())
}

func (t TimestampSec) Value() int64 {
	return int64(t)
}

func (t TimestampSec) Gte(sec TimestampSec) bool {
	return t.Value() >= sec.Value()
}

func (t TimestampSec) Lt(sec TimestampSec) bool {
	return t.Value() < sec.Value()
}
