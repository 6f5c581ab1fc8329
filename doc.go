// Package vercompat generates the build model for a Java library that has to
// work with several versions of a dependency. It is built around two
// generators that work on a [Host] build model, usually a [vckore.Project]:
//
//   - [Extension.Adapters] creates version specific adapter units, grouped by
//     namespace, and wires them into the production code, the tests and the
//     jar.
//   - [Extension.Tests] computes the cartesian product of the versions of
//     some test dimensions and creates one test task per version tuple, each
//     with its own classpath.
//
// Units, scopes and tasks are named by deterministic rules, so they can be
// referenced by name from a build definition:
//
//	compatApi, compat1Dot0, testCompat1Dot0        namespace "" with version 1.0
//	compatLangApi, compatLang3Dot5                 namespace "lang" with version 3.5
//	testCompatibilityWithLang3Dot0AndJdk17         dimensions lang and jdk
//
// Nothing is built or run. The generated model can be listed, planned and
// drawn with [TaskReport], [vckore.Project.Plan] and [Diagrammer].
//
// Use [Edit] to configure an extension without explicit error handling:
//
//	ext := vercompat.NewExtension(prj, nil)
//	err := vercompat.Edit(ext, func(ext vercompat.ExtensionEd) {
//		ext.Adapters(func(a vercompat.AdaptersEd) {
//			a.Namespace("lang", "3.0", "3.5")
//		})
//		ext.Tests(func(t vercompat.TestsEd) {
//			t.Dimension("lang", "3.0", "3.5", "3.12.0")
//		})
//	})
package vercompat
