package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("Should register the full schema", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("streamlink.disable.ads")
			So(result, ShouldEqual, "streamlink_disable_ads")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env prefixes the application name", func() {
			f := Default[key.StreamlinkQuality]
			So(f.Env(), ShouldEqual, "TWITCHY_STREAMLINK_QUALITY")
		})

		Convey("typeName reflects the default value", func() {
			intField := Default[key.ListFirst]
			boolField := Default[key.CliColored]
			sliceField := Default[key.StreamlinkExtraArgs]
			So(intField.typeName(), ShouldEqual, "int")
			So(boolField.typeName(), ShouldEqual, "bool")
			So(sliceField.typeName(), ShouldEqual, "[]string")
		})

		Convey("Parse converts raw input to the field's type", func() {
			intField := Default[key.ListFirst]
			v, err := intField.Parse([]string{"50"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 50)

			boolField := Default[key.CliColored]
			v, err = boolField.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			sliceField := Default[key.StreamlinkExtraArgs]
			v, err = sliceField.Parse([]string{"--retry-open", "3"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"--retry-open", "3"})
		})

		Convey("Parse rejects values of the wrong shape", func() {
			intField := Default[key.ListFirst]
			boolField := Default[key.CliColored]

			_, err := intField.Parse([]string{"plenty"})
			So(err, ShouldNotBeNil)

			_, err = boolField.Parse([]string{"yep"})
			So(err, ShouldNotBeNil)

			_, err = intField.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}
