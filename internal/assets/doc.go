// Package assets stages the shared prompt, skill and framework files into a
// project.
//
// Assets are read from the first candidate source that has them: a
// $SIMPLESPEC_HOME/assets directory, an assets directory next to the
// executable, ./assets, and finally the bundle embedded in the binary.
package assets
