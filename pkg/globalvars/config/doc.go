/*
Package config loads globalvars settings from YAML or JSON.

# Overview

Settings controls the behavior that sits around the registry rather than
in it: which components are expired after each kind of change, the text a
Getter shows for a missing key, whether the Viewer reports type schemas,
and which observability features are on.

# File Format

	expire:
	  on_set: [getter, viewer]
	  on_remove: [getter, viewer]
	  on_clear: [getter, viewer]
	getter:
	  missing_message: No value found for the provided key
	viewer:
	  include_schemas: false
	null_type_name: "null"
	observability:
	  metrics: false
	  tracing: false
	  log_level: info

Every field is optional. Loading starts from Default and overlays whatever
the file provides, so an empty file yields the defaults. An explicitly
empty list (on_set: []) disables expiry for that change.

# Loading

	s, err := config.FromFile("globalvars.yaml")
	if err != nil {
	    log.Fatal(err)
	}

FromYAML and FromJSON parse byte slices. All loaders validate the result.
*/
package config
