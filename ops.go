package main

import "strconv"

// builtinOp is a word whose whole behavior happens at eval time: the
// arithmetic, logic, comparison, stack shuffle, output, and heap words.
type builtinOp opKind

func (op builtinOp) eval(ft *Forth) bool {
	kind := opKind(op)
	name := opNames[kind]
	switch kind {

	// Two-operand arithmetic pops v2 then v1 and pushes v1 OP v2.
	// Division by zero yields 0 rather than aborting.
	case opAdd:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a + b)
		}
	case opSub:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a - b)
		}
	case opMul:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a * b)
		}
	case opDiv:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			if b == 0 {
				ft.stack.push(0)
			} else {
				ft.stack.push(a / b)
			}
		}
	case opMod:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			if b == 0 {
				ft.stack.push(0)
			} else {
				ft.stack.push(a % b)
			}
		}
	case opAnd:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a & b)
		}
	case opOr:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a | b)
		}
	case opXor:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a ^ b)
		}

	case opEqual:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(boolCell(a == b))
		}
	case opLesser:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(boolCell(a < b))
		}
	case opGreater:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(boolCell(a > b))
		}

	case opInvert:
		if ft.need(name, 1) {
			ft.stack.push(^ft.stack.pop())
		}
	case opDup:
		if ft.need(name, 1) {
			v := ft.stack.pop()
			ft.stack.push(v, v)
		}
	case opDrop:
		if ft.need(name, 1) {
			ft.stack.pop()
		}
	case opSwap:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(b, a)
		}
	case opOver:
		if ft.need(name, 2) {
			b, a := ft.stack.pop(), ft.stack.pop()
			ft.stack.push(a, b, a)
		}
	case opRot:
		if ft.need(name, 3) {
			c, b, a := ft.stack.pop(), ft.stack.pop(), ft.stack.pop()
			ft.stack.push(b, c, a)
		}

	case opDot:
		if ft.need(name, 1) {
			ft.out.printValue(strconv.Itoa(ft.stack.pop()))
		}
	case opEmit:
		// prints the decimal codepoint of the first character of the
		// value's decimal representation, not the character itself
		if ft.need(name, 1) {
			s := strconv.Itoa(ft.stack.pop())
			ft.out.printValue(strconv.Itoa(int(s[0])))
		}
	case opCr:
		ft.out.cr()
	case opDump:
		ft.out.dump(ft.stack)

	case opAllot:
		if ft.need(name, 1) {
			if err := ft.heap.allot(ft.stack.pop()); err != nil {
				ft.errf(tagBadAddress, "%v", err)
			}
		}
	case opCells:
		// cell size is 1: nothing to scale

	case opGet:
		if ft.need(name, 1) {
			addr := ft.stack.pop()
			if v, err := ft.heap.get(addr); err != nil {
				ft.errf(tagBadAddress, "%v", err)
			} else {
				ft.stack.push(v)
			}
		}
	case opSet:
		if ft.need(name, 2) {
			addr, val := ft.stack.pop(), ft.stack.pop()
			if err := ft.heap.set(addr, val); err != nil {
				ft.errf(tagBadAddress, "%v", err)
			}
		}
	}
	return true
}
