//Package osc encodes and decodes OpenSoundControl packets, and provides
//a small UDP client and server for exchanging them.
//
//This implementation follows the Open Sound Control 1.0 Specification
//(http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent,
//message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Features
//
//- Messages with the following type tags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' ([]byte)
//	'd' (float64)
//
//Booleans encode as int32 0 or 1, and nil arguments are skipped
//entirely; neither has a wire type of its own. Any other argument type
//falls back to its string representation.
//
//- Bundles with time tags, nested to arbitrary depth. Decoding a
//bundle stamps its time onto each directly contained message.
//
//- Dispatching of decoded messages to handlers by exact address.
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet: a contiguous block
//of binary data whose size is always a multiple of 4 bytes. A packet
//is either a Message (an address pattern plus zero or more arguments)
//or a Bundle (a time tag plus zero or more packets).
//
//Usage
//
//Client example:
//  client, err := osc.Dial("localhost:8765")
//  if err != nil {
//      log.Fatal(err)
//  }
//  msg := osc.NewMessage("/osc/address")
//  msg.Append(int32(111))
//  msg.Append(true)
//  msg.Append("hello")
//  client.Send(msg)
//
//Server example:
//  d := osc.NewDispatcher()
//  d.RegisterFunc("/message/address", func(msg *osc.Message) {
//      fmt.Println(msg)
//  })
//
//  server := &osc.Server{
//      Addr:       "127.0.0.1:8765",
//      Dispatcher: d,
//  }
//  server.ListenAndServe()
package osc
