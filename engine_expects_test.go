package stackr

// @generated from engine_test.go

//go:generate go run scripts/gen_engine_expects.go -- engine_test.go engine_expects_test.go

func withEngineOptions(opts ...Option) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withOptions(opts...)
	}
}

func withEngineSource(src ...string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withSource(src...)
	}
}

func expectEngineError(kind error, message string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectError(kind, message)
	}
}

func expectEngineErrorAt(line, col int) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectErrorAt(line, col)
	}
}

func expectEngineStack(values ...interface{}) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectStack(values...)
	}
}

func expectEngineOutput(output string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectOutput(output)
	}
}

func expectEngineOutputContaining(parts ...string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectOutputContaining(parts...)
	}
}

func expectEngineDoc(name, doc string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectDoc(name, doc)
	}
}
