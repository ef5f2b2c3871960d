package domain_test

import (
	"selectest.dev/pkg/selectest/internal/domain"
	m "selectest.dev/pkg/selectest/internal/model"
)

const testVariant = "enterprise-rhel-80-64-bit"

func generatorTask(name string, vars m.ArgumentSet) *m.Task {
	return &m.Task{
		Name: name,
		Commands: []m.Command{
			{Func: "do setup"},
			{Func: domain.GenerateResmokeTasksFunc, Vars: vars},
		},
	}
}

func runTestsTask(name string, vars m.ArgumentSet) *m.Task {
	return &m.Task{
		Name: name,
		Commands: []m.Command{
			{Func: "do setup"},
			{Func: domain.RunTestsFunc, Vars: vars},
		},
	}
}

func plainTask(name, funcName string) *m.Task {
	return &m.Task{Name: name, Commands: []m.Command{{Func: funcName}}}
}

// newTestVariant mirrors a typical variant: generated and plain resmoke
// tasks next to compile, unit-test and fuzzer tasks.
func newTestVariant() *m.Variant {
	return m.NewVariant(testVariant,
		m.Expansions{
			"project":           "variant-project",
			"large_distro_name": "rhel80-large",
		},
		generatorTask("jsCore_gen", m.ArgumentSet{
			"resmoke_args":            "--storageEngine=wiredTiger",
			"fallback_num_sub_suites": "4",
		}),
		generatorTask("auth_gen", m.ArgumentSet{
			"suite":                   "auth_audit",
			"resmoke_args":            "--storageEngine=wiredTiger",
			"fallback_num_sub_suites": "2",
			"use_large_distro":        "true",
		}),
		runTestsTask("replica_sets", m.ArgumentSet{
			"resmoke_args": "--suites=replica_sets --storageEngine=wiredTiger",
		}),
		runTestsTask("unittests", m.ArgumentSet{"resmoke_args": "--suites=unittests"}),
		runTestsTask("jsonSchema", m.ArgumentSet{"resmoke_args": "--suites=json_schema"}),
		plainTask("compile", "compile"),
		plainTask("jstestfuzz_gen", "generate fuzzer tasks"),
		plainTask("lint", "run lint"),
	)
}

func testExpansions() m.Expansions {
	return m.Expansions{
		"task_name":     "selected_tests_gen",
		"build_variant": "selected-tests",
		"build_id":      "mongodb_mongo_master_selected_tests_123",
		"project":       "mongodb-mongo-master",
		"task_id":       "task_id_123",
	}
}

func testIdentity() m.GeneratingIdentity {
	return m.GeneratingIdentity{
		Task:         "selected_tests_gen",
		BuildVariant: "selected-tests",
		BuildID:      "mongodb_mongo_master_selected_tests_123",
	}
}
