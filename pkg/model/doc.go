// Package model describes the base objects manipulated by cratemon.
//
// The object model for a release is composed of:
//
//	Workspace:
//	  The fixed set of packages under release management, declared as
//	  configuration. The declaration order of packages is the publish
//	  order: every package appears after the packages it depends on.
//
//	Packages:
//	  A unit of publishable code, located by its manifest file. At any
//	  stable point all package manifests carry the same version string.
//
//	Dependencies:
//	  The declared (dependent, dependency) pairs between workspace
//	  packages, each carrying the relative path used by the local
//	  development form of the reference.
//
//	Versions:
//	  A semantic version triple. Bumping the major part resets minor and
//	  patch, bumping minor resets patch.
package model
