/*
Package option implements optional values.

Requests for fonts leave parameters unset to signal "use the default".
Maybe makes this explicit without resorting to pointers, which keeps
requests comparable and free of heap allocation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option
