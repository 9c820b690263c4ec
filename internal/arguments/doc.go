// Package arguments models the Optimium user arguments document.
//
// The document is the single artifact the wizard produces: a fixed, nested
// key-value structure consumed by the Optimium optimization and deployment
// tooling. Its schema never changes at runtime; every key is present from the
// moment the document is created until it is exported.
//
// # Schema
//
//	{
//	    "device_name": "YOUR_DEVICE_ALIAS",
//	    "model": {"framework": "YOUR_FRAMEWORK"},
//	    "remote": {"address": "YOUR_REMOTE_IP_ADDRESS", "port": "YOUR_REMOTE_PORT"},
//	    "target_devices": {"host": {"arch": "ARM64", "os": "LINUX", "mattr": "auto"}},
//	    "runtime": {"num_threads": 1},
//	    "optimization": {"opt_log_key": "USER_LOG_KEY", "enable_tuning": false}
//	}
//
// # Step Ownership
//
// Each wizard step owns a disjoint sub-tree of the document. SetField only
// writes fields owned by the given step:
//
//	doc := arguments.New()
//	err := doc.SetField(arguments.StepRemote, arguments.FieldPort, "8080")
//
// Writing a field owned by another step fails with ErrCrossStepWrite and
// leaves the document untouched.
//
// # Normalization
//
// Raw input is coerced before storage rather than rejected:
//   - remote.port: digits are parsed; anything else becomes 32264
//   - remote.address: an empty string becomes "localhost"
//
// # Serialization
//
// Serialize renders the document as indented JSON in schema order. Parse reads
// it back; keys missing from the input keep their defaults so the parsed
// document is always complete. SerializeYAML and ParseYAML do the same for
// YAML.
package arguments
